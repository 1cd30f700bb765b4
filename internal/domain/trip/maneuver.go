package trip

// ManeuverType classifies a turn instruction. The set mirrors the routing
// engine's maneuver vocabulary so any renderer can map instructions to icons
// and text without parsing free text.
type ManeuverType string

const (
	ManeuverTurn           ManeuverType = "turn"
	ManeuverNewName        ManeuverType = "new name"
	ManeuverDepart         ManeuverType = "depart"
	ManeuverArrive         ManeuverType = "arrive"
	ManeuverMerge          ManeuverType = "merge"
	ManeuverOnRamp         ManeuverType = "on ramp"
	ManeuverOffRamp        ManeuverType = "off ramp"
	ManeuverFork           ManeuverType = "fork"
	ManeuverEndOfRoad      ManeuverType = "end of road"
	ManeuverContinue       ManeuverType = "continue"
	ManeuverRoundabout     ManeuverType = "roundabout"
	ManeuverRotary         ManeuverType = "rotary"
	ManeuverRoundaboutTurn ManeuverType = "roundabout turn"
	ManeuverExitRoundabout ManeuverType = "exit roundabout"
	ManeuverExitRotary     ManeuverType = "exit rotary"
	ManeuverNotification   ManeuverType = "notification"
)

var maneuverTypes = map[ManeuverType]struct{}{
	ManeuverTurn: {}, ManeuverNewName: {}, ManeuverDepart: {}, ManeuverArrive: {},
	ManeuverMerge: {}, ManeuverOnRamp: {}, ManeuverOffRamp: {}, ManeuverFork: {},
	ManeuverEndOfRoad: {}, ManeuverContinue: {}, ManeuverRoundabout: {},
	ManeuverRotary: {}, ManeuverRoundaboutTurn: {}, ManeuverExitRoundabout: {},
	ManeuverExitRotary: {}, ManeuverNotification: {},
}

// IsValid reports whether the type belongs to the fixed vocabulary.
func (t ManeuverType) IsValid() bool {
	_, ok := maneuverTypes[t]
	return ok
}

// ManeuverModifier refines the direction of a maneuver.
type ManeuverModifier string

const (
	ModifierUTurn       ManeuverModifier = "uturn"
	ModifierSharpRight  ManeuverModifier = "sharp right"
	ModifierRight       ManeuverModifier = "right"
	ModifierSlightRight ManeuverModifier = "slight right"
	ModifierStraight    ManeuverModifier = "straight"
	ModifierSlightLeft  ManeuverModifier = "slight left"
	ModifierLeft        ManeuverModifier = "left"
	ModifierSharpLeft   ManeuverModifier = "sharp left"
)

var maneuverModifiers = map[ManeuverModifier]struct{}{
	ModifierUTurn: {}, ModifierSharpRight: {}, ModifierRight: {},
	ModifierSlightRight: {}, ModifierStraight: {}, ModifierSlightLeft: {},
	ModifierLeft: {}, ModifierSharpLeft: {},
}

// IsValid reports whether the modifier belongs to the fixed vocabulary.
// The empty modifier is valid: depart/arrive steps often carry none.
func (m ManeuverModifier) IsValid() bool {
	if m == "" {
		return true
	}
	_, ok := maneuverModifiers[m]
	return ok
}

// Maneuver is the type+modifier pair attached to one Step. Values outside
// the fixed vocabulary are passed through untouched so a renderer can fall
// back to a generic icon, but Known reports them.
type Maneuver struct {
	Type     ManeuverType     `json:"type"`
	Modifier ManeuverModifier `json:"modifier,omitempty"`
}

// Known reports whether both parts belong to the fixed vocabulary.
func (m Maneuver) Known() bool {
	return m.Type.IsValid() && m.Modifier.IsValid()
}
