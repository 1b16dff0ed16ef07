package requests

type ListCatalog struct {
	Page        int    `validate:"min=1"`
	Limit       int    `validate:"min=1,max=100"`
	Search      string `validate:"omitempty,max=100"`
	ServiceType string `validate:"omitempty,service_type"`
	Category    string `validate:"omitempty,max=100"`
	IsActive    *bool
}

type CreateServicePackage struct {
	PackageID               string   `json:"packageId" validate:"required"`
	ServiceType             string   `json:"serviceType" validate:"required,service_type"`
	Name                    string   `json:"name" validate:"required"`
	Description             string   `json:"description" validate:"required"`
	TestsIncluded           []string `json:"testsIncluded"`
	ServicesIncluded        []string `json:"servicesIncluded"`
	Price                   float64  `json:"price" validate:"gte=0"`
	OriginalPrice           float64  `json:"originalPrice" validate:"gte=0"`
	Category                string   `json:"category" validate:"required"`
	SubCategory             string   `json:"subCategory,omitempty"`
	Duration                *int     `json:"duration,omitempty" validate:"omitempty,gte=0"`
	PreparationInstructions []string `json:"preparationInstructions,omitempty"`
	Tags                    []string `json:"tags,omitempty"`
	Popularity              *int     `json:"popularity,omitempty" validate:"omitempty,gte=0"`
	IsActive                *bool    `json:"isActive,omitempty"`
}

type UpdateServicePackage struct {
	Name                    *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description             *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	TestsIncluded           []string `json:"testsIncluded,omitempty"`
	ServicesIncluded        []string `json:"servicesIncluded,omitempty"`
	Price                   *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	OriginalPrice           *float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Category                *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	SubCategory             *string  `json:"subCategory,omitempty"`
	Duration                *int     `json:"duration,omitempty" validate:"omitempty,gte=0"`
	PreparationInstructions []string `json:"preparationInstructions,omitempty"`
	Tags                    []string `json:"tags,omitempty"`
	Popularity              *int     `json:"popularity,omitempty" validate:"omitempty,gte=0"`
	IsActive                *bool    `json:"isActive,omitempty"`
}

type CreateService struct {
	ServiceID     string   `json:"serviceId" validate:"required"`
	ServiceType   string   `json:"serviceType" validate:"required,service_type"`
	Name          string   `json:"name" validate:"required"`
	Category      string   `json:"category,omitempty"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

type UpdateService struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Category      *string  `json:"category,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

type ServicePriceUpdate struct {
	ServiceID     string   `json:"serviceId" validate:"required"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
}

type BulkUpdateServices struct {
	Updates []ServicePriceUpdate `json:"updates" validate:"required,min=1,dive"`
}
