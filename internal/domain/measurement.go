package domain

// Per-room measurement records. Field values mirror the intake form: sizes
// stay strings so partially filled rows can be stored as-is, and the photo
// attachment is optional (absent on records saved before it was added).

type CurtainMeasurement struct {
	ID          int64  `json:"id"`
	Room        string `json:"room"`
	ColorNumber string `json:"colorNumber"`
	Type        string `json:"type"` // Overgordijn, Inbetween, Vitrage
	PleatType   string `json:"pleatType"`
	HeaderSize  string `json:"headerSize"` // cm
	Mounting    string `json:"mounting"`   // Wand, Plafond
	HemType     string `json:"hemType"`    // Enkel, Dubbel, Loodveter
	Unit        string `json:"unit"`       // Stel, Stuks
	Width       string `json:"width"`
	Height      string `json:"height"`
	Notes       string `json:"notes"`
	Photo       string `json:"photo,omitempty"`
}

// Empty reports whether the row carries no usable data and can be dropped on save.
func (m CurtainMeasurement) Empty() bool {
	return m.Room == "" && m.Width == "" && m.Height == ""
}

type FloorMeasurement struct {
	ID           int64  `json:"id"`
	Room         string `json:"room"`
	ColorNumber  string `json:"colorNumber"`
	Type         string `json:"type"` // Laminaat, PVC, Tapijt, Vloerbedekking, Vinyl
	Length       string `json:"length"`
	Width        string `json:"width"`
	Skirting     bool   `json:"skirting"`
	Underlayment string `json:"underlayment"` // Beton, Hout, Anders
	Notes        string `json:"notes"`
	Photo        string `json:"photo,omitempty"`
}

func (m FloorMeasurement) Empty() bool {
	return m.Room == "" && m.Length == "" && m.Width == ""
}

type WindowDecorationMeasurement struct {
	ID          int64  `json:"id"`
	Room        string `json:"room"`
	ColorNumber string `json:"colorNumber"`
	Type        string `json:"type"`     // Rolgordijn, Jaloezie, Plissé, Duette, Vouwgordijn
	Mounting    string `json:"mounting"` // In de dag, Op de dag
	Width       string `json:"width"`
	Height      string `json:"height"`
	ControlSide string `json:"controlSide"` // Links, Rechts
	Notes       string `json:"notes"`
	Photo       string `json:"photo,omitempty"`
}

func (m WindowDecorationMeasurement) Empty() bool {
	return m.Room == "" && m.Width == "" && m.Height == ""
}
