package web

// Column is one table column; Key may be a dotted path such as data.name.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Field struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Type     string   `json:"type,omitempty"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// Resource drives the generic list/modal script for one API endpoint.
type Resource struct {
	Endpoint  string   `json:"endpoint"`
	Paginated bool     `json:"paginated"`
	Wrap      string   `json:"wrap,omitempty"`
	Columns   []Column `json:"columns"`
	Fields    []Field  `json:"fields"`
	Actions   []string `json:"actions,omitempty"`
}

var vendorResource = Resource{
	Endpoint:  "/api/maintenance",
	Paginated: true,
	Columns: []Column{
		{"school_name", "학교명"}, {"stuff", "담당자"}, {"com_name", "업체명"},
		{"phone", "연락처"}, {"licence", "면허번호"},
	},
	Fields: []Field{
		{Key: "school_name", Label: "학교명", Required: true},
		{Key: "stuff", Label: "담당자"},
		{Key: "com_name", Label: "업체명", Required: true},
		{Key: "phone", Label: "연락처", Type: "tel"},
		{Key: "licence", Label: "면허번호"},
	},
}

var technicianResource = Resource{
	Endpoint: "/api/technicians",
	Columns: []Column{
		{"name", "성명"}, {"phoneNumber", "연락처"}, {"team", "소속팀"}, {"id", "아이디"},
	},
	Fields: []Field{
		{Key: "name", Label: "성명", Required: true},
		{Key: "phoneNumber", Label: "연락처", Type: "tel", Required: true},
		{Key: "team", Label: "소속팀", Type: "select", Options: Teams, Required: true},
		{Key: "id", Label: "아이디", Required: true},
		{Key: "password", Label: "비밀번호", Type: "password"},
	},
}

var schoolResource = Resource{
	Endpoint:  "/api/schools",
	Paginated: true,
	Wrap:      "data",
	Columns: []Column{
		{"data.division", "교육청"}, {"data.level", "학교급"}, {"data.name", "학교명"},
		{"data.istech", "기술교사"}, {"data.total_classes", "총학급수"},
		{"data.teachers_room_num", "교무실번호"}, {"data.admin_room_num", "행정실번호"},
		{"data.team", "팀"}, {"data.address", "주소"}, {"iscomp", "완료"},
	},
	Fields: []Field{
		{Key: "division", Label: "교육청"},
		{Key: "level", Label: "학교급", Type: "select", Options: []string{"초", "중", "고", "특수"}},
		{Key: "name", Label: "학교명", Required: true},
		{Key: "istech", Label: "기술교사", Type: "number"},
		{Key: "total_classes", Label: "총학급수", Type: "number"},
		{Key: "teachers_room_num", Label: "교무실번호"},
		{Key: "admin_room_num", Label: "행정실번호"},
		{Key: "team", Label: "팀", Type: "select", Options: Teams},
		{Key: "address", Label: "주소"},
		{Key: "lat", Label: "위도", Type: "number"},
		{Key: "lon", Label: "경도", Type: "number"},
	},
	Actions: []string{"complete"},
}
