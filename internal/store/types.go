package store

// Link is a labelled external URL on the profile (GitHub, LinkedIn, etc.).
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Profile is the single owner record. Summary is markdown; it is rendered
// and sanitized at page-build time, not here.
type Profile struct {
	Name       string `json:"name"`
	Headline   string `json:"headline"`
	Location   string `json:"location"`
	Email      string `json:"email"`
	Links      []Link `json:"links,omitempty"`
	Summary    string `json:"summary"`
	PhotoPath  string `json:"photo_path,omitempty"`
	ResumePath string `json:"resume_path,omitempty"`
}

// Experience is one work-history entry. Description holds sanitized
// rich-text HTML.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project is a portfolio project. Description holds sanitized rich-text HTML.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	URL         string   `json:"url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Skill is a named skill with an optional 1–5 level.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level,omitempty"`
}

// Education is one education entry. Description holds sanitized rich-text HTML.
type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   string `json:"start_year,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	Description string `json:"description,omitempty"`
}

// Award is a recognition entry. Description holds sanitized rich-text HTML.
type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Year        string `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
}

// Certification is a credential entry. Description holds sanitized rich-text HTML.
type Certification struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer,omitempty"`
	IssuedAt    string `json:"issued_at,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// Portfolio is the whole persisted document.
type Portfolio struct {
	Profile        Profile         `json:"profile"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Awards         []Award         `json:"awards,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

func (e Experience) entityID() string    { return e.ID }
func (p Project) entityID() string       { return p.ID }
func (s Skill) entityID() string         { return s.ID }
func (e Education) entityID() string     { return e.ID }
func (a Award) entityID() string         { return a.ID }
func (c Certification) entityID() string { return c.ID }
