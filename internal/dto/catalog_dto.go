package dto

type CourseResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	CreditHours int      `json:"credit_hours"`
	Description string   `json:"description,omitempty"`
	Prereqs     []string `json:"prereqs"`
}

type PrerequisiteResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type InstructorResponse struct {
	Name           string `json:"name"`
	Title          string `json:"title,omitempty"`
	OfficeLocation string `json:"office_location,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Status         string `json:"status,omitempty"`
}
