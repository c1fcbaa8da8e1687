package dto

import "github.com/jeongjingoo/tech/internal/models"

type VendorRequest struct {
	ID         string `json:"_id"`
	SchoolName Text   `json:"school_name" validate:"required"`
	Stuff      Text   `json:"stuff"`
	ComName    Text   `json:"com_name" validate:"required"`
	Phone      Text   `json:"phone"`
	Licence    Text   `json:"licence"`
}

func (r VendorRequest) ToModel() models.Vendor {
	return models.Vendor{
		SchoolName: r.SchoolName.String(),
		Stuff:      r.Stuff.String(),
		ComName:    r.ComName.String(),
		Phone:      r.Phone.String(),
		Licence:    r.Licence.String(),
	}
}
