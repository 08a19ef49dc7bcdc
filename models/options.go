package models

import "fmt"

// Option is one entry of a select control.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FormOptions holds the choices offered for the categorical fields.
type FormOptions struct {
	Hours             []Option `json:"hour"`
	Weekdays          []Option `json:"weekday"`
	Seasons           []Option `json:"season"`
	Holiday           []Option `json:"holiday"`
	Workingday        []Option `json:"workingday"`
	WeatherSituations []Option `json:"weathersit"`
}

var yesNo = []Option{
	{Value: 0, Label: "No"},
	{Value: 1, Label: "Yes"},
}

// DefaultFormOptions returns the option tables rendered by the form.
func DefaultFormOptions() FormOptions {
	hours := make([]Option, 0, 24)
	for h := 0; h < 24; h++ {
		hours = append(hours, Option{Value: h, Label: fmt.Sprintf("%02d:00", h)})
	}

	return FormOptions{
		Hours: hours,
		Weekdays: []Option{
			{Value: 0, Label: "Sunday"},
			{Value: 1, Label: "Monday"},
			{Value: 2, Label: "Tuesday"},
			{Value: 3, Label: "Wednesday"},
			{Value: 4, Label: "Thursday"},
			{Value: 5, Label: "Friday"},
			{Value: 6, Label: "Saturday"},
		},
		Seasons: []Option{
			{Value: 1, Label: "Spring"},
			{Value: 2, Label: "Summer"},
			{Value: 3, Label: "Fall"},
			{Value: 4, Label: "Winter"},
		},
		Holiday:    yesNo,
		Workingday: yesNo,
		WeatherSituations: []Option{
			{Value: 1, Label: "Clear/Partly Cloudy"},
			{Value: 2, Label: "Mist/Cloudy"},
			{Value: 3, Label: "Light Snow/Rain"},
			{Value: 4, Label: "Heavy Rain/Snow"},
		},
	}
}
