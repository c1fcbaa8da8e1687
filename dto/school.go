package dto

import "github.com/jeongjingoo/tech/internal/models"

// SchoolDataRequest is the editable part of a school. Numbers may arrive as strings.
type SchoolDataRequest struct {
	Division        Text   `json:"division"`
	Level           Text   `json:"level"`
	Name            Text   `json:"name" validate:"required"`
	IsTech          Number `json:"istech"`
	Address         Text   `json:"address"`
	TotalClasses    Number `json:"total_classes"`
	TeachersRoomNum Text   `json:"teachers_room_num"`
	TeacherRoomNum  Text   `json:"teacher_room_num"`
	AdminRoomNum    Text   `json:"admin_room_num"`
	Team            Text   `json:"team"`
	Lat             Number `json:"lat"`
	Lon             Number `json:"lon"`
	Lng             Number `json:"lng"`
}

func (r SchoolDataRequest) ToModel() models.SchoolData {
	teachersRoom := r.TeachersRoomNum
	if teachersRoom == "" {
		teachersRoom = r.TeacherRoomNum
	}
	lon := r.Lon
	if lon == 0 {
		lon = r.Lng
	}
	return models.SchoolData{
		Division:        r.Division.String(),
		Level:           r.Level.String(),
		Name:            r.Name.String(),
		IsTech:          r.IsTech.Int(),
		Address:         r.Address.String(),
		TotalClasses:    r.TotalClasses.Int(),
		TeachersRoomNum: teachersRoom.String(),
		AdminRoomNum:    r.AdminRoomNum.String(),
		Team:            r.Team.String(),
		Lat:             r.Lat.Float(),
		Lon:             lon.Float(),
	}.WithDefaults()
}

type SchoolCreateRequest struct {
	Data SchoolDataRequest `json:"data"`
}

type SchoolUpdateRequest struct {
	ID   string            `json:"_id"`
	Data SchoolDataRequest `json:"data"`
}

// SchoolStatusRequest is the body form of PUT /schools/update.
type SchoolStatusRequest struct {
	Team   *string `json:"team"`
	IsComp *Number `json:"iscomp"`
}

type ImportResult struct {
	Added   int    `json:"added"`
	Updated int    `json:"updated"`
	Errors  int    `json:"errors"`
	BatchID string `json:"batchId"`
	// Skipped counts rows left unprocessed when the import deadline passed.
	Skipped int `json:"skipped,omitempty"`
}

type Stats struct {
	TechnicianCount      int64 `json:"technicianCount"`
	SchoolCount          int64 `json:"schoolCount"`
	CompletedSchoolCount int64 `json:"completedSchoolCount"`
}
