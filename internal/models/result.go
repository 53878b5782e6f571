package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type EvaluateRequest struct {
	DocumentID       string `json:"document_id" validate:"required,uuid"`
	ProblemStatement string `json:"problem_statement" validate:"required,min=10"`
}

type EvaluateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID                  string            `json:"id"`
	Status              string            `json:"status"`
	Report              *EvaluationReport `json:"report,omitempty"`
	PresentationSummary string            `json:"presentation_summary,omitempty"`
	ErrorMessage        *string           `json:"error_message,omitempty"`
}

type ReconstructRequest struct {
	PresentationSummary string   `json:"presentation_summary" validate:"required"`
	ProblemStatement    string   `json:"problem_statement" validate:"required"`
	Analysis            Critique `json:"analysis"`
	CustomInstructions  string   `json:"custom_instructions"`
}

type ReconstructResponse struct {
	Structure   PresentationStructure `json:"structure"`
	FilePath    string                `json:"file_path"`
	DownloadURL string                `json:"download_url"`
}

type RefineRequest struct {
	Structure           PresentationStructure `json:"structure" validate:"required"`
	Instruction         string                `json:"instruction" validate:"required"`
	PresentationSummary string                `json:"presentation_summary"`
}

type RefineResponse struct {
	Structure   PresentationStructure `json:"structure"`
	Applied     bool                  `json:"applied"`
	FilePath    string                `json:"file_path,omitempty"`
	DownloadURL string                `json:"download_url,omitempty"`
}
