package transpiler

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/log"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

type Mode int

const (
	BEST_EFFORT Mode = iota // skip unknown operations with a diagnostic
	STRICT                  // fail on unknown operations
)

func (m Mode) String() string {
	switch m {
	case BEST_EFFORT:
		return "best_effort"
	case STRICT:
		return "strict"
	default:
		return "unknown"
	}
}

type DiagnosticKind int

const (
	UnknownOperation DiagnosticKind = iota
	UnimplementedOperation
	StatePrepExcluded
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnknownOperation:
		return "unknown_operation"
	case UnimplementedOperation:
		return "unimplemented_operation"
	case StatePrepExcluded:
		return "state_prep_excluded"
	default:
		return "unknown"
	}
}

// Diagnostic records a source operation that was not translated.
type Diagnostic struct {
	Kind      DiagnosticKind `json:"kind"`
	Index     int            `json:"index"`
	Operation string         `json:"operation"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s/index:%d/operation:%s", d.Kind, d.Index, d.Operation)
}

type Translation struct {
	// Tape is the source tape relabelled to standard wires.
	Tape        *circuit.Tape
	Circuit     *qpu.QuantumCircuit
	WireCount   int
	Diagnostics []Diagnostic
}

// Warnings returns the names of the skipped unimplemented operations.
func (t *Translation) Warnings() []string {
	w := []string{}
	for _, d := range t.Diagnostics {
		if d.Kind == UnimplementedOperation {
			w = append(w, d.Operation)
		}
	}
	return w
}

type Transpiler struct {
	mode    Mode
	metrics *log.Metrics
}

func NewTranspiler(mode Mode, metrics *log.Metrics) *Transpiler {
	if metrics == nil {
		metrics = log.NoopMetrics()
	}
	return &Transpiler{
		mode:    mode,
		metrics: metrics,
	}
}

func (t *Transpiler) Mode() Mode {
	return t.mode
}

// Translate builds the target circuit of tape. Wires are shifted by one and
// the order of the operations is kept.
func (t *Transpiler) Translate(ctx context.Context, tape *circuit.Tape) (*Translation, error) {
	std := tape.MapToStandardWires()
	wireCount := len(std.OperationWires())
	tr := &Translation{
		Tape:        std,
		Circuit:     qpu.NewQuantumCircuit(wireCount),
		WireCount:   wireCount,
		Diagnostics: []Diagnostic{},
	}
	for i, op := range std.Operations {
		if i == 0 && op.IsStatePrep() {
			zap.L().Info(fmt.Sprintf("excluded state preparation/operation:%s", op))
			tr.skip(ctx, t.metrics, StatePrepExcluded, i, op.Name)
			continue
		}
		entry, result := Lookup(op.Name)
		switch result {
		case NotFound:
			if t.mode == STRICT {
				zap.L().Error(fmt.Sprintf("unknown operation/index:%d/operation:%s", i, op))
				return nil, errors.Wrapf(core.ErrUnknownOperation, "operation %d: %s", i, op.Name)
			}
			zap.L().Warn(fmt.Sprintf("skipped unknown operation/index:%d/operation:%s", i, op))
			tr.skip(ctx, t.metrics, UnknownOperation, i, op.Name)
			continue
		case Unimplemented:
			zap.L().Warn(fmt.Sprintf("skipped unimplemented operation/index:%d/operation:%s", i, op))
			tr.skip(ctx, t.metrics, UnimplementedOperation, i, op.Name)
			continue
		}
		if len(op.Wires) != entry.Wires || len(op.Params) != entry.Params {
			return nil, fmt.Errorf("operation %d: %s takes %d wires and %d params, got %d and %d",
				i, op.Name, entry.Wires, entry.Params, len(op.Wires), len(op.Params))
		}
		wires := make([]int, len(op.Wires))
		for j, w := range op.Wires {
			wires[j] = w + 1
		}
		if err := tr.Circuit.Push(entry.Build(op.Params, wires)); err != nil {
			return nil, errors.Wrapf(err, "operation %d: %s", i, op.Name)
		}
		t.metrics.TranslatedOperations.Add(ctx, 1,
			metric.WithAttributes(attribute.String("target", entry.Target)))
	}
	zap.L().Debug(fmt.Sprintf("translated %d operations into %d instructions/qubits:%d/diagnostics:%v",
		len(std.Operations), len(tr.Circuit.Instructions), wireCount, tr.Diagnostics))
	return tr, nil
}

func (tr *Translation) skip(ctx context.Context, m *log.Metrics, kind DiagnosticKind, index int, name string) {
	tr.Diagnostics = append(tr.Diagnostics, Diagnostic{
		Kind:      kind,
		Index:     index,
		Operation: name,
	})
	m.SkippedOperations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("kind", kind.String())))
}
