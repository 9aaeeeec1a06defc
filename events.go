package behaviorkit

import "time"

// EventKind identifies one kind of host event.
type EventKind string

// The fixed catalog of host events. Hosts extend it with Custom events;
// the propagation algorithm never needs to change for new kinds.
const (
	EventLeaveGround                  EventKind = "leave-ground"
	EventLandOnGround                 EventKind = "land-on-ground"
	EventContact                      EventKind = "contact"
	EventMoveToSuccess                EventKind = "move-to-success"
	EventMoveToFailure                EventKind = "move-to-failure"
	EventStuck                        EventKind = "stuck"
	EventUnStuck                      EventKind = "un-stuck"
	EventPostureChanged               EventKind = "posture-changed"
	EventRegionChanged                EventKind = "region-changed"
	EventModelChanged                 EventKind = "model-changed"
	EventAnimationActivityComplete    EventKind = "animation-activity-complete"
	EventAnimationActivityInterrupted EventKind = "animation-activity-interrupted"
	EventAnimationEvent               EventKind = "animation-event"
	EventIgnited                      EventKind = "ignited"
	EventInjured                      EventKind = "injured"
	EventKilled                       EventKind = "killed"
	EventOtherKilled                  EventKind = "other-killed"
	EventBlinded                      EventKind = "blinded"
	EventShoved                       EventKind = "shoved"
	EventHitByProjectile              EventKind = "hit-by-projectile"
	EventEnteredHazard                EventKind = "entered-hazard"
	EventSight                        EventKind = "sight"
	EventLostSight                    EventKind = "lost-sight"
	EventThreatChanged                EventKind = "threat-changed"
	EventSound                        EventKind = "sound"
	EventSpokeConcept                 EventKind = "spoke-concept"
	EventPickedUp                     EventKind = "picked-up"
	EventDropped                      EventKind = "dropped"
	EventCommandAttack                EventKind = "command-attack"
	EventCommandAssault               EventKind = "command-assault"
	EventCommandApproach              EventKind = "command-approach"
	EventCommandApproachEntity        EventKind = "command-approach-entity"
	EventCommandRetreat               EventKind = "command-retreat"
	EventCommandPause                 EventKind = "command-pause"
	EventCommandResume                EventKind = "command-resume"
	EventCommandString                EventKind = "command-string"
)

// Event is a host event dispatched into the active action stack. Events
// never mutate the stack directly; handlers propose desired results that
// are committed on the next update.
type Event interface {
	Kind() EventKind
}

// MoveFailure describes why a movement request failed.
type MoveFailure int

const (
	// MoveFailureNoPath means no path to the goal exists.
	MoveFailureNoPath MoveFailure = iota
	// MoveFailureStuck means the actor stopped making progress.
	MoveFailureStuck
	// MoveFailureFellOff means the actor fell off the path.
	MoveFailureFellOff
)

// --- movement ---

// LeaveGround fires when the actor leaves the ground.
type LeaveGround struct{ Ground Entity }

// LandOnGround fires when the actor lands.
type LandOnGround struct{ Ground Entity }

// Contact fires on physical contact with another entity.
type Contact struct{ Other Entity }

// MoveToSuccess fires when a movement request reaches its goal.
type MoveToSuccess struct{ Path Entity }

// MoveToFailure fires when a movement request is abandoned.
type MoveToFailure struct {
	Path   Entity
	Reason MoveFailure
}

// Stuck fires when the actor stops making progress along a path.
type Stuck struct{}

// UnStuck fires when a stuck actor frees itself.
type UnStuck struct{}

// PostureChanged fires when the actor's body posture changes.
type PostureChanged struct{}

// RegionChanged fires when the actor crosses into a different nav region.
type RegionChanged struct{ Old, New Entity }

// ModelChanged fires when the actor's model is swapped.
type ModelChanged struct{}

// --- animation ---

// AnimationActivityComplete fires when an animation activity finishes.
type AnimationActivityComplete struct{ Activity int }

// AnimationActivityInterrupted fires when an animation activity is cut off.
type AnimationActivityInterrupted struct{ Activity int }

// AnimationEvent fires for a scripted animation event.
type AnimationEvent struct{ Event int }

// --- damage ---

// Ignited fires when the actor catches fire.
type Ignited struct{}

// Injured fires when the actor takes damage.
type Injured struct {
	Attacker Entity
	Amount   float64
}

// Killed fires when the actor dies.
type Killed struct{ Attacker Entity }

// OtherKilled fires when the actor witnesses another character's death.
type OtherKilled struct {
	Victim   Entity
	Attacker Entity
}

// Blinded fires when the actor's vision is blocked.
type Blinded struct{ Blinder Entity }

// Shoved fires when the actor is pushed.
type Shoved struct{ Pusher Entity }

// HitByProjectile fires when a thrown projectile hits the actor.
type HitByProjectile struct{ Projectile Entity }

// EnteredHazard fires when the actor steps into a damaging area.
type EnteredHazard struct{ Hazard Entity }

// --- perception ---

// Sight fires when a subject becomes visible.
type Sight struct{ Subject Entity }

// LostSight fires when a subject is no longer visible.
type LostSight struct{ Subject Entity }

// ThreatChanged fires when the actor's primary threat changes.
type ThreatChanged struct{ Subject Entity }

// Sound fires when the actor hears something.
type Sound struct {
	Source Entity
	Pos    Vector
}

// SpokeConcept fires when a character speaks a response concept.
type SpokeConcept struct {
	Speaker Entity
	Concept string
}

// --- items ---

// PickedUp fires when the actor picks up an item.
type PickedUp struct {
	Item  Entity
	Giver Entity
}

// Dropped fires when the actor drops an item.
type Dropped struct{ Item Entity }

// --- commands ---

// CommandAttack orders the actor to attack a victim.
type CommandAttack struct{ Victim Entity }

// CommandAssault orders the actor to assault.
type CommandAssault struct{}

// CommandApproach orders the actor to approach a position.
type CommandApproach struct {
	Pos   Vector
	Range float64
}

// CommandApproachEntity orders the actor to approach an entity.
type CommandApproachEntity struct{ Goal Entity }

// CommandRetreat orders the actor to retreat from a threat.
type CommandRetreat struct {
	Threat Entity
	Range  float64
}

// CommandPause orders the actor to pause for a duration.
type CommandPause struct{ Duration time.Duration }

// CommandResume orders a paused actor to resume.
type CommandResume struct{}

// CommandString carries a free-form host command.
type CommandString struct{ Command string }

// Custom is a host-defined event. Actions receive it through the generic
// EventHandler capability.
type Custom struct {
	Name    EventKind
	Payload any
}

// Kind implementations.

func (LeaveGround) Kind() EventKind                  { return EventLeaveGround }
func (LandOnGround) Kind() EventKind                 { return EventLandOnGround }
func (Contact) Kind() EventKind                      { return EventContact }
func (MoveToSuccess) Kind() EventKind                { return EventMoveToSuccess }
func (MoveToFailure) Kind() EventKind                { return EventMoveToFailure }
func (Stuck) Kind() EventKind                        { return EventStuck }
func (UnStuck) Kind() EventKind                      { return EventUnStuck }
func (PostureChanged) Kind() EventKind               { return EventPostureChanged }
func (RegionChanged) Kind() EventKind                { return EventRegionChanged }
func (ModelChanged) Kind() EventKind                 { return EventModelChanged }
func (AnimationActivityComplete) Kind() EventKind    { return EventAnimationActivityComplete }
func (AnimationActivityInterrupted) Kind() EventKind { return EventAnimationActivityInterrupted }
func (AnimationEvent) Kind() EventKind               { return EventAnimationEvent }
func (Ignited) Kind() EventKind                      { return EventIgnited }
func (Injured) Kind() EventKind                      { return EventInjured }
func (Killed) Kind() EventKind                       { return EventKilled }
func (OtherKilled) Kind() EventKind                  { return EventOtherKilled }
func (Blinded) Kind() EventKind                      { return EventBlinded }
func (Shoved) Kind() EventKind                       { return EventShoved }
func (HitByProjectile) Kind() EventKind              { return EventHitByProjectile }
func (EnteredHazard) Kind() EventKind                { return EventEnteredHazard }
func (Sight) Kind() EventKind                        { return EventSight }
func (LostSight) Kind() EventKind                    { return EventLostSight }
func (ThreatChanged) Kind() EventKind                { return EventThreatChanged }
func (Sound) Kind() EventKind                        { return EventSound }
func (SpokeConcept) Kind() EventKind                 { return EventSpokeConcept }
func (PickedUp) Kind() EventKind                     { return EventPickedUp }
func (Dropped) Kind() EventKind                      { return EventDropped }
func (CommandAttack) Kind() EventKind                { return EventCommandAttack }
func (CommandAssault) Kind() EventKind               { return EventCommandAssault }
func (CommandApproach) Kind() EventKind              { return EventCommandApproach }
func (CommandApproachEntity) Kind() EventKind        { return EventCommandApproachEntity }
func (CommandRetreat) Kind() EventKind               { return EventCommandRetreat }
func (CommandPause) Kind() EventKind                 { return EventCommandPause }
func (CommandResume) Kind() EventKind                { return EventCommandResume }
func (CommandString) Kind() EventKind                { return EventCommandString }

// Kind returns the custom event's name.
func (c Custom) Kind() EventKind { return c.Name }
