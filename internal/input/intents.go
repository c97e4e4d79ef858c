package input

// Intents is the logical input consumed by the simulation.
//
// MoveLeft and MoveRight are level signals held while the control is down.
// Jump and shoot are edge-triggered latches: a frontend triggers them and the
// simulation consumes them when acted upon. A latch that cannot be acted upon
// (jump while airborne, shoot on cooldown) stays pending.
type Intents struct {
	MoveLeft  bool
	MoveRight bool

	jump  bool
	shoot bool
}

// TriggerJump latches a jump request.
func (in *Intents) TriggerJump() { in.jump = true }

// TriggerShoot latches a shoot request.
func (in *Intents) TriggerShoot() { in.shoot = true }

// JumpPending reports whether a jump is latched.
func (in *Intents) JumpPending() bool { return in.jump }

// ShootPending reports whether a shot is latched.
func (in *Intents) ShootPending() bool { return in.shoot }

// ConsumeJump clears the jump latch.
func (in *Intents) ConsumeJump() { in.jump = false }

// ConsumeShoot clears the shoot latch.
func (in *Intents) ConsumeShoot() { in.shoot = false }

// Reset clears every signal.
func (in *Intents) Reset() { *in = Intents{} }
