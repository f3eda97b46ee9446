package report

import (
	"Ballast/internal/calc/buoyancy"
	"time"

	"github.com/google/uuid"
)

// Input is a buoyancy snapshot plus the header fields printed on the report.
type Input struct {
	buoyancy.Input `yaml:",inline"`
	Project        string `json:"project,omitempty" yaml:"project,omitempty"`
	Author         string `json:"author,omitempty" yaml:"author,omitempty"`
}

// Document is a calculated report ready to be rendered.
type Document struct {
	ID        string
	Title     string
	Project   string
	Author    string
	Generated time.Time
	Input     buoyancy.Input
	Result    buoyancy.Result
}

const defaultTitle = "Buoyancy Check"

// Build runs the check and stamps the result with a report id.
func Build(in Input) (Document, error) {
	res, err := buoyancy.Calculate(in.Input)
	if err != nil {
		return Document{}, err
	}
	return Document{
		ID:        uuid.NewString(),
		Title:     defaultTitle,
		Project:   in.Project,
		Author:    in.Author,
		Generated: time.Now(),
		Input:     in.Input,
		Result:    res,
	}, nil
}
