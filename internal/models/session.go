package models

// Settings are caller-supplied interview parameters, fixed at session creation.
type Settings struct {
	TimeLimitSec            int `json:"time_limit_sec"`
	MaxQuestions            int `json:"max_questions"`
	EarlyTerminateThreshold int `json:"early_terminate_threshold"`
}

// Session is the mutable aggregate for one candidate's interview. It is only
// mutated by answer submission; report fetching reads it without mutation.
// Callers serialize mutations per session id.
type Session struct {
	ID              string
	ResumeText      string
	JDText          string
	Settings        Settings
	Difficulty      Difficulty
	Strikes         int
	QuestionCount   int
	Scores          []int
	UsedQuestionIDs map[string]bool
	Terminated      bool
}

// ── Request Types ────────────────────────────────────────

type AnalyzeRequest struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
}

type StartSessionRequest struct {
	ResumeText string   `json:"resume_text"`
	JDText     string   `json:"jd_text"`
	Settings   Settings `json:"settings"`
}

type SubmitAnswerRequest struct {
	SessionID    string `json:"session_id"`
	QuestionID   string `json:"question_id"`
	AnswerText   string `json:"answer_text"`
	TimeTakenSec int    `json:"time_taken_sec"`
}

// ── Response Types ────────────────────────────────────────

type AnalyzeResponse struct {
	Skills           []string `json:"skills"`
	RoleRequirements []string `json:"role_requirements"`
	FocusAreas       []string `json:"focus_areas"`
}

type StartSessionResponse struct {
	SessionID string   `json:"session_id"`
	Question  Question `json:"question"`
}

// Breakdown holds the five evaluation sub-scores, each in [0,100].
type Breakdown struct {
	Accuracy       int `json:"accuracy"`
	Clarity        int `json:"clarity"`
	Depth          int `json:"depth"`
	Relevance      int `json:"relevance"`
	TimeEfficiency int `json:"time_efficiency"`
}

type Evaluation struct {
	Score     int       `json:"score_0_100"`
	Breakdown Breakdown `json:"breakdown"`
	Feedback  []string  `json:"feedback"`
}

// SessionState is the externally visible snapshot returned after each answer.
type SessionState struct {
	Difficulty     Difficulty `json:"difficulty"`
	Strikes        int        `json:"strikes"`
	Terminated     bool       `json:"terminated"`
	QuestionCount  int        `json:"question_count"`
	ReadinessScore int        `json:"readiness_score"`
}

type SubmitAnswerResponse struct {
	NextQuestion *Question    `json:"next_question"`
	Evaluation   Evaluation   `json:"evaluation"`
	State        SessionState `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
