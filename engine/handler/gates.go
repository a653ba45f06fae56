package handler

import (
	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

// Rejection reason tags, per spec.md §6's business taxonomy.
const (
	ReasonNotAuthenticated  = "not_authenticated"
	ReasonNoState           = "no_state"
	ReasonInvalidSeat       = "invalid_seat"
	ReasonSeatTaken         = "seat_taken"
	ReasonGameInProgress    = "game_in_progress"
	ReasonNotSeated         = "not_seated"
	ReasonInvalidAction     = "invalid_action"
	ReasonHostOnly          = "host_only"
	ReasonInvalidStatus     = "invalid_status"
	ReasonForbiddenAudio    = "forbidden_while_audio_playing"
	ReasonNightNotComplete  = "night_not_complete"
	ReasonWolfRobotHunterAck = "wolfrobot_hunter_status_not_viewed"
	ReasonInvalidStep       = "invalid_step"
	ReasonNotLearnedHunter  = "not_learned_hunter"
	ReasonNotSelf           = "not_self"
)

func gateStatePresent(s *state.GameState) (ok bool, reason string) {
	if s == nil {
		return false, ReasonNoState
	}
	return true, ""
}

func gateHostOnly(s *state.GameState, requestUID string) (ok bool, reason string) {
	if requestUID != s.HostUID {
		return false, ReasonHostOnly
	}
	return true, ""
}

func gateStatus(s *state.GameState, want state.Status) (ok bool, reason string) {
	if s.Status != want {
		return false, ReasonInvalidStatus
	}
	return true, ""
}

func gateNotAudioPlaying(s *state.GameState) (ok bool, reason string) {
	if s.IsAudioPlaying {
		return false, ReasonForbiddenAudio
	}
	return true, ""
}

// gateWolfRobotHunterAck implements spec.md §4.7 gate 5: if wolfRobotLearn
// revealed "hunter", the wolfRobot seat must acknowledge before
// progression may continue. The current step is not checked: the gate
// applies whichever step is current while the acknowledgement is pending.
func gateWolfRobotHunterAck(s *state.GameState) (ok bool, reason string) {
	if s.WolfRobotReveal != nil && s.WolfRobotReveal.LearnedRoleID == roles.Hunter && !s.WolfRobotHunterStatusViewed {
		return false, ReasonWolfRobotHunterAck
	}
	return true, ""
}
