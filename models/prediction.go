package models

import "fmt"

// Field names as sent to the prediction service.
const (
	FieldTemp       = "temp"
	FieldAtemp      = "atemp"
	FieldHumidity   = "humidity"
	FieldWindspeed  = "windspeed"
	FieldHour       = "hour"
	FieldWeekday    = "weekday"
	FieldSeason     = "season"
	FieldHoliday    = "holiday"
	FieldWorkingday = "workingday"
	FieldWeathersit = "weathersit"
)

// FieldNames lists every PredictionInput field in form order.
var FieldNames = []string{
	FieldTemp,
	FieldAtemp,
	FieldHumidity,
	FieldWindspeed,
	FieldHour,
	FieldWeekday,
	FieldSeason,
	FieldHoliday,
	FieldWorkingday,
	FieldWeathersit,
}

// PredictionInput is the request body for the prediction service.
// All ten fields are always present; unparsable input is stored as 0.
type PredictionInput struct {
	Temp       float64 `json:"temp"`
	Atemp      float64 `json:"atemp"`
	Humidity   float64 `json:"humidity"`
	Windspeed  float64 `json:"windspeed"`
	Hour       float64 `json:"hour"`
	Weekday    float64 `json:"weekday"`
	Season     float64 `json:"season"`
	Holiday    float64 `json:"holiday"`
	Workingday float64 `json:"workingday"`
	Weathersit float64 `json:"weathersit"`
}

// DefaultPredictionInput returns the values a fresh form starts with.
func DefaultPredictionInput() PredictionInput {
	return PredictionInput{
		Season:     1,
		Workingday: 1,
		Weathersit: 1,
	}
}

func (p *PredictionInput) field(name string) (*float64, error) {
	switch name {
	case FieldTemp:
		return &p.Temp, nil
	case FieldAtemp:
		return &p.Atemp, nil
	case FieldHumidity:
		return &p.Humidity, nil
	case FieldWindspeed:
		return &p.Windspeed, nil
	case FieldHour:
		return &p.Hour, nil
	case FieldWeekday:
		return &p.Weekday, nil
	case FieldSeason:
		return &p.Season, nil
	case FieldHoliday:
		return &p.Holiday, nil
	case FieldWorkingday:
		return &p.Workingday, nil
	case FieldWeathersit:
		return &p.Weathersit, nil
	}
	return nil, fmt.Errorf("unknown prediction field %q", name)
}

// Set writes a single field, leaving the others untouched.
func (p *PredictionInput) Set(name string, value float64) error {
	f, err := p.field(name)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// Get reads a single field by its JSON name.
func (p PredictionInput) Get(name string) (float64, error) {
	f, err := p.field(name)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

// PredictionResponse is the success body returned by the prediction service.
type PredictionResponse struct {
	Prediction float64 `json:"prediction"`
}
