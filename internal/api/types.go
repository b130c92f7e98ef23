package api

import "github.com/numberninja/numberninja/internal/question"

// Range bounds one operand: values are drawn from [Min, Max] and, when
// Multiple is non-zero, restricted to multiples of it.
type Range struct {
	Min      int `json:"min"`
	Max      int `json:"max"`
	Multiple int `json:"multiple"`
}

// CreateSessionRequest is the body of POST /api/sessions/create.
type CreateSessionRequest struct {
	Mode        string               `json:"mode"`
	Operations  []question.Operation `json:"operations"`
	TermA       Range                `json:"termA"`
	TermB       Range                `json:"termB"`
	FirebaseUID string               `json:"firebaseUid"`
	TimeLimit   int                  `json:"timeLimit"`
}

// createSessionResponse carries the server-assigned session identity.
type createSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// Answer is the wire-format projection of one answered (or
// reconciled) question, submitted in bulk at game end.
type Answer struct {
	QuestionIndex  int                `json:"questionIndex"`
	SelectedAnswer string             `json:"selectedAnswer"`
	IsCorrect      bool               `json:"isCorrect"`
	TimeTaken      int                `json:"timeTaken"`
	NumberA        int                `json:"numberA"`
	NumberB        int                `json:"numberB"`
	Operation      question.Operation `json:"operation"`
}

// submitAnswersRequest is the body of POST /api/questions/{id}/submit.
type submitAnswersRequest struct {
	Answers []Answer `json:"answers"`
}

// SubmitResult is the server's acknowledgement of a submission.
type SubmitResult struct {
	CorrectAnswers int `json:"correctAnswers"`
	TotalQuestions int `json:"totalQuestions"`
	TotalTime      int `json:"totalTime"`
}
