package qpu

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/common"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"go.uber.org/zap"
)

const (
	CIRCUITS_PATH           = "/api/v1/circuits"
	DEFAULT_GATEWAY_TIMEOUT = 30 * time.Second
	REQUEST_ID_HEADER       = "X-Request-Id"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// GatewayClient is the REST client of the remote hardware service.
type GatewayClient struct {
	endpoint   string
	execCtx    core.ExecutionContext
	httpClient *http.Client
}

func NewGatewayClient(ec core.ExecutionContext) (*GatewayClient, error) {
	if !ec.IsComplete() {
		return nil, fmt.Errorf("execution context needs host, user, access token and project id")
	}
	endpoint, err := common.ValidEndpoint(ec.Host)
	if err != nil {
		return nil, err
	}
	zap.L().Info("remote gateway client is created", zap.String("endpoint", endpoint),
		zap.String("user", ec.User), zap.String("projectID", ec.ProjectID))
	return &GatewayClient{
		endpoint: endpoint,
		execCtx:  ec,
		httpClient: &http.Client{
			Transport: &loggingRoundTripper{next: http.DefaultTransport},
			Timeout:   DEFAULT_GATEWAY_TIMEOUT,
		},
	}, nil
}

type submitRequest struct {
	Name      string      `json:"name"`
	ProjectID string      `json:"projectID"`
	ShotCount int         `json:"shotCount"`
	Circuit   circuitJSON `json:"circuit"`
}

type circuitJSON struct {
	QubitCount   int               `json:"qubitCount"`
	BitCount     int               `json:"bitCount"`
	Instructions []instructionJSON `json:"instructions"`
}

type instructionJSON struct {
	Type       string           `json:"type"`
	Qubits     []int            `json:"qubits"`
	Bits       []int            `json:"bits,omitempty"`
	Parameters []float64        `json:"parameters,omitempty"`
	Kernel     *instructionJSON `json:"kernel,omitempty"`
}

func toInstructionJSON(in Instruction) (instructionJSON, error) {
	switch v := in.(type) {
	case *Gate:
		ij := instructionJSON{
			Type:       v.Name,
			Qubits:     v.ConnectedQubits,
			Parameters: v.Params,
		}
		if v.Kernel != nil {
			k, err := toInstructionJSON(v.Kernel)
			if err != nil {
				return instructionJSON{}, err
			}
			ij.Kernel = &k
		}
		return ij, nil
	case *Readout:
		return instructionJSON{
			Type:   "readout",
			Qubits: []int{v.ConnectedQubit},
			Bits:   []int{v.DestinationBit},
		}, nil
	default:
		return instructionJSON{}, errors.Wrapf(core.ErrUnclassifiableInstruction, "%T", in)
	}
}

func (g *GatewayClient) Submit(ctx context.Context, c *QuantumCircuit, shots int) (string, error) {
	cj := circuitJSON{
		QubitCount:   c.QubitCount,
		BitCount:     c.BitCount,
		Instructions: make([]instructionJSON, 0, len(c.Instructions)),
	}
	for _, in := range c.Instructions {
		ij, err := toInstructionJSON(in)
		if err != nil {
			return "", err
		}
		cj.Instructions = append(cj.Instructions, ij)
	}
	body, err := jsonIter.Marshal(submitRequest{
		Name:      "sfbridge-" + uuid.NewString(),
		ProjectID: g.execCtx.ProjectID,
		ShotCount: shots,
		Circuit:   cj,
	})
	if err != nil {
		return "", errors.Wrap(err, "encode circuit")
	}
	resp, err := g.do(ctx, http.MethodPost, CIRCUITS_PATH, body)
	if err != nil {
		return "", err
	}
	id, err := decodeSubmitResponse(resp)
	if err != nil {
		return "", err
	}
	zap.L().Info("submitted circuit", zap.String("jobID", id), zap.Int("shots", shots))
	return id, nil
}

func (g *GatewayClient) Status(ctx context.Context, jobID string) (core.Status, error) {
	resp, err := g.do(ctx, http.MethodGet, fmt.Sprintf("%s/%s", CIRCUITS_PATH, jobID), nil)
	if err != nil {
		return 0, err
	}
	return decodeStatusResponse(resp)
}

func (g *GatewayClient) Result(ctx context.Context, jobID string) (*RemoteResult, error) {
	resp, err := g.do(ctx, http.MethodGet, fmt.Sprintf("%s/%s/result", CIRCUITS_PATH, jobID), nil)
	if err != nil {
		return nil, err
	}
	return DecodeRemoteResult(resp)
}

func (g *GatewayClient) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.endpoint+path, reader)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(g.execCtx.User, g.execCtx.AccessToken)
	req.Header.Set(REQUEST_ID_HEADER, uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read response of %s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

func decodeSubmitResponse(b []byte) (string, error) {
	id := ""
	err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		if key != "id" {
			return d.Skip()
		}
		v, err := d.Str()
		id = v
		return err
	})
	if err != nil {
		return "", errors.Wrap(err, "decode submit response")
	}
	if id == "" {
		return "", fmt.Errorf("submit response has no id: %s", string(b))
	}
	return id, nil
}

func decodeStatusResponse(b []byte) (core.Status, error) {
	statusType := ""
	err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		if key != "status" {
			return d.Skip()
		}
		return d.Obj(func(d *jx.Decoder, key string) error {
			if key != "type" {
				return d.Skip()
			}
			v, err := d.Str()
			statusType = v
			return err
		})
	})
	if err != nil {
		return 0, errors.Wrap(err, "decode status response")
	}
	return core.ToStatus(statusType)
}

// DecodeRemoteResult decodes {"histogram": {outcome: count}, "memory": [outcome]}.
func DecodeRemoteResult(b []byte) (*RemoteResult, error) {
	r := &RemoteResult{
		Histogram: make(core.Counts),
	}
	err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "histogram":
			return d.Obj(func(d *jx.Decoder, outcome string) error {
				n, err := d.UInt32()
				if err != nil {
					return err
				}
				r.Histogram[outcome] = n
				return nil
			})
		case "memory":
			if d.Next() == jx.Null {
				return d.Null()
			}
			return d.Arr(func(d *jx.Decoder) error {
				s, err := d.Str()
				if err != nil {
					return err
				}
				r.Memory = append(r.Memory, s)
				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode result response")
	}
	return r, nil
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (lrt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := lrt.next.RoundTrip(req)
	if err != nil {
		zap.L().Error("API roundtrip failed", zap.String("url", req.URL.String()), zap.Error(err))
		return nil, err
	}

	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		zap.L().Error("Failed to read API response body", zap.Error(readErr), zap.Int("statusCode", resp.StatusCode), zap.String("url", req.URL.String()))
		resp.Body.Close()
		return resp, nil
	}
	resp.Body.Close()

	zap.L().Debug("Received API response",
		zap.String("url", req.URL.String()),
		zap.String("requestID", req.Header.Get(REQUEST_ID_HEADER)),
		zap.Int("statusCode", resp.StatusCode),
		zap.ByteString("responseBody", bodyBytes),
	)

	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	return resp, nil
}
