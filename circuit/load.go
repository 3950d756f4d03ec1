package circuit

import (
	"fmt"

	"github.com/go-faster/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/common"
	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

type tapeFile struct {
	Operations   []operationFile   `json:"operations"`
	Measurements []measurementFile `json:"measurements"`
	Shots        *int              `json:"shots,omitempty"`
}

type operationFile struct {
	Name   string    `json:"name"`
	Params []float64 `json:"params,omitempty"`
	Wires  []int     `json:"wires"`
}

type measurementFile struct {
	Type       string          `json:"type"`
	Wires      []int           `json:"wires,omitempty"`
	Observable *observableFile `json:"observable,omitempty"`
}

type observableFile struct {
	Name   string           `json:"name,omitempty"`
	Wires  []int            `json:"wires,omitempty"`
	Matrix [][][2]float64   `json:"matrix,omitempty"` // [re, im] pairs
	Tensor []observableFile `json:"tensor,omitempty"`
}

func LoadTapeFile(path string) (*Tape, error) {
	blob, err := common.ReadFile(path)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read tape file/path:%s/reason:%s", path, err))
		return nil, err
	}
	return ParseTape([]byte(blob))
}

func ParseTape(blob []byte) (*Tape, error) {
	tf := &tapeFile{}
	if err := jsonIter.Unmarshal(blob, tf); err != nil {
		return nil, errors.Wrap(err, "decode tape")
	}
	t := &Tape{
		Operations:   make([]Operation, 0, len(tf.Operations)),
		Measurements: make([]MeasurementRequest, 0, len(tf.Measurements)),
		Shots:        tf.Shots,
	}
	if err := t.CheckShots(); err != nil {
		return nil, err
	}
	for i, of := range tf.Operations {
		if of.Name == "" {
			return nil, fmt.Errorf("operation %d has no name", i)
		}
		t.Operations = append(t.Operations, NewOperation(of.Name, of.Wires, of.Params...))
	}
	for i, mf := range tf.Measurements {
		kind, err := ParseMeasurementKind(mf.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "measurement %d", i)
		}
		m := MeasurementRequest{
			Kind:  kind,
			Wires: mf.Wires,
		}
		if mf.Observable != nil {
			obs, err := mf.Observable.toObservable()
			if err != nil {
				return nil, errors.Wrapf(err, "measurement %d", i)
			}
			m.Observable = obs
		}
		t.Measurements = append(t.Measurements, m)
	}
	zap.L().Debug(fmt.Sprintf("parsed tape/operations:%d/measurements:%d/shots:%d",
		len(t.Operations), len(t.Measurements), t.ShotCount()))
	return t, nil
}

func (of *observableFile) toObservable() (*Observable, error) {
	if len(of.Tensor) > 0 {
		var obs *Observable
		for _, f := range of.Tensor {
			factor, err := f.toObservable()
			if err != nil {
				return nil, err
			}
			if obs == nil {
				obs = factor
				continue
			}
			if obs, err = Tensor(obs, factor); err != nil {
				return nil, err
			}
		}
		return obs, nil
	}
	if of.Matrix != nil {
		m := NewMatrix(len(of.Matrix), len(of.Matrix))
		for i, row := range of.Matrix {
			if len(row) != len(of.Matrix) {
				return nil, fmt.Errorf("observable matrix is not square")
			}
			for j, c := range row {
				m[i][j] = complex(c[0], c[1])
			}
		}
		return NewHermitian(m, of.Wires...)
	}
	if len(of.Wires) != 1 {
		return nil, fmt.Errorf("observable %s needs exactly one wire, got %v", of.Name, of.Wires)
	}
	return NewObservable(of.Name, of.Wires[0]), nil
}
