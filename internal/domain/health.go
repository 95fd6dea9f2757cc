package domain

// Models exchanged with the primary backend and the content service.

type Goal struct {
	ID          string `json:"_id"`
	PatientID   string `json:"patientId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Status      string `json:"status"` // active | completed | cancelled
	Progress    int    `json:"progress"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Reminder struct {
	ID            string `json:"_id"`
	PatientID     string `json:"patientId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Type          string `json:"type"` // medication | appointment | general
	ScheduledDate string `json:"scheduledDate"`
	IsActive      bool   `json:"isActive"`
	Recurrence    string `json:"recurrence,omitempty"` // daily | weekly | monthly | none
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type Profile struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// Article is a content-service record surfaced on the health information
// pages.
type Article struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	PublishedDate string   `json:"publishedDate"`
	Author        string   `json:"author,omitempty"`
	ReadTime      int      `json:"readTime,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// HealthTopic is a catalog entry for the condition library.
type HealthTopic struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Category   string `json:"category"`
	Prevalence string `json:"prevalence"`
}

type HealthTopicDetail struct {
	HealthTopic
	Description     string   `json:"description"`
	Symptoms        []string `json:"symptoms"`
	Treatments      []string `json:"treatments"`
	Prevention      []string `json:"prevention"`
	WhenToSeeDoctor []string `json:"whenToSeeDoctor"`
}
