package models

type AskRequest struct {
	Question    string `json:"question"`
	Grade       string `json:"grade"`
	SubjectUser string `json:"subjectUser,omitempty"`
	Explanation bool   `json:"explanation"`
	Steps       bool   `json:"steps"`
}

type AskResponse struct {
	Success           bool     `json:"success"`
	Subject           string   `json:"subject,omitempty"`
	Agent             string   `json:"agent,omitempty"`
	Grade             string   `json:"grade,omitempty"`
	Answer            string   `json:"answer,omitempty"`
	Explanation       string   `json:"explanation,omitempty"`
	Steps             string   `json:"steps,omitempty"`
	Error             string   `json:"error,omitempty"`
	DetectedSubject   string   `json:"detectedSubject,omitempty"`
	ProvidedQuestion  string   `json:"providedQuestion,omitempty"`
	SupportedSubjects []string `json:"supportedSubjects,omitempty"`
}
