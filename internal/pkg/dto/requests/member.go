package requests

type ListUsers struct {
	Page   int    `validate:"min=1"`
	Limit  int    `validate:"min=1,max=100"`
	Search string `validate:"omitempty,max=100"`
	Status string `validate:"omitempty,max=50"`
}

type SearchUsers struct {
	Page          int    `validate:"min=1"`
	Limit         int    `validate:"min=1,max=100"`
	Search        string `validate:"omitempty,max=100"`
	Status        string `validate:"omitempty,max=50"`
	EmailVerified string `validate:"omitempty,oneof=true false"`
	DateFrom      string `validate:"omitempty,datetime=2006-01-02"`
	DateTo        string `validate:"omitempty,datetime=2006-01-02"`
}

type ListDoctors struct {
	Page           int    `validate:"min=1"`
	Limit          int    `validate:"min=1,max=100"`
	Search         string `validate:"omitempty,max=100"`
	Status         string `validate:"omitempty,max=50"`
	Specialization string `validate:"omitempty,max=100"`
}

type SearchDoctors struct {
	Page           int    `validate:"min=1"`
	Limit          int    `validate:"min=1,max=100"`
	Search         string `validate:"omitempty,max=100"`
	Status         string `validate:"omitempty,max=50"`
	EmailVerified  string `validate:"omitempty,oneof=true false"`
	Specialization string `validate:"omitempty,max=100"`
	ExperienceMin  *int   `validate:"omitempty,gte=0"`
	ExperienceMax  *int   `validate:"omitempty,gte=0"`
	DateFrom       string `validate:"omitempty,datetime=2006-01-02"`
	DateTo         string `validate:"omitempty,datetime=2006-01-02"`
}
