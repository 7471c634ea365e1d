package domain

// TouchMethod is the contact method of a single touch.
type TouchMethod string

const (
	MethodCall     TouchMethod = "call"
	MethodWhatsapp TouchMethod = "whatsapp"
	MethodVisit    TouchMethod = "visit"
	MethodEmail    TouchMethod = "email"
	MethodMeeting  TouchMethod = "meeting"
)

// Valid reports whether m is a known contact method.
func (m TouchMethod) Valid() bool {
	switch m {
	case MethodCall, MethodWhatsapp, MethodVisit, MethodEmail, MethodMeeting:
		return true
	}
	return false
}

// AssigneeRule decides who a materialized touch is assigned to.
type AssigneeRule string

const (
	AssignEntityOwner  AssigneeRule = "entity_owner"
	AssignSpecificUser AssigneeRule = "specific_user"
	AssignFieldStaff   AssigneeRule = "field_staff"
)

// Valid reports whether r is a known assignee rule.
func (r AssigneeRule) Valid() bool {
	switch r {
	case AssignEntityOwner, AssignSpecificUser, AssignFieldStaff:
		return true
	}
	return false
}

// CycleBehavior is the policy applied when every touch of a cycle has been
// resolved.
type CycleBehavior string

const (
	BehaviorOneTime     CycleBehavior = "one_time"
	BehaviorAutoRepeat  CycleBehavior = "auto_repeat"
	BehaviorUserDefined CycleBehavior = "user_defined"
)

// Valid reports whether b is a known cycle behavior.
func (b CycleBehavior) Valid() bool {
	switch b {
	case BehaviorOneTime, BehaviorAutoRepeat, BehaviorUserDefined:
		return true
	}
	return false
}

// TemplateStep is one step of a sequence template. Subscriptions carry a
// snapshot of all their steps so that editing or deleting a preset never
// changes cycles that are already running.
type TemplateStep struct {
	Method       TouchMethod  `json:"method"`
	IntervalDays int          `json:"interval_days"`
	AssigneeRule AssigneeRule `json:"assignee_rule"`
	AssigneeID   int          `json:"assignee_id,omitempty"`
}

// ValidateTemplate checks a sequence template the way preset-save and
// activation do: at least one step, no negative intervals, known enums.
func ValidateTemplate(steps []TemplateStep) error {
	if len(steps) == 0 {
		return NewEmptySequenceError()
	}
	for i, s := range steps {
		if s.IntervalDays < 0 {
			return NewInvalidIntervalError(i, s.IntervalDays)
		}
		if !s.Method.Valid() {
			return NewValidationError("unknown touch method: " + string(s.Method))
		}
		if !s.AssigneeRule.Valid() {
			return NewValidationError("unknown assignee rule: " + string(s.AssigneeRule))
		}
	}
	return nil
}

// CycleEvaluation is the outcome of the cycle-completion policy after a
// touch resolution.
type CycleEvaluation struct {
	CycleComplete bool          `json:"cycle_complete"`
	Behavior      CycleBehavior `json:"behavior,omitempty"`
	NewCycle      int           `json:"new_cycle,omitempty"`
}
