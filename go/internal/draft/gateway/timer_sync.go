package gateway

// Simple Timer Synchronization - No complex clock sync needed
//
// Strategy: Send the pick deadline to the client, let client count down
// - draft_next_pick event includes the pick deadline
// - Client counts down to that deadline
// - Server timeout is authoritative for auto-pick
// - Client timer is just visual feedback

// Timer approach:
// 1. Server sends: {"type": "draft_next_pick", "data": {"pick_deadline": "..."}}
// 2. Client counts down: 60, 59, 58, 57... 0
// 3. Server handles real timeout and auto-pick
// 4. On reconnect: send time_remaining_sec in state sync

// No complex clock synchronization needed - keep it simple!
