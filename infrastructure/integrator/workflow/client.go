package workflow

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/internal/config"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/pkg/metrics"
	"github.com/BrianElionDev/Meta-ads-project/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBodySize = 2048

type Client interface {
	TriggerCampaign(ctx context.Context, request *domain.WorkflowRequest) (*Response, error)
}

// Response é a resposta da automação. O corpo é livre, então é repassado como veio.
type Response struct {
	StatusCode int `json:"status_code"`
	Data       any `json:"data"`
}

type WorkflowClient struct {
	httpClient *http.Client
	webhookURL string
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	return &WorkflowClient{
		httpClient: &http.Client{
			Timeout: cfg.Workflow.Timeout,
		},
		webhookURL: cfg.Workflow.WebhookURL,
		metrics:    m,
	}
}

// TriggerCampaign envia o pedido de criação para o webhook. Qualquer resposta
// fora da faixa 2xx ou falha de transporte retorna um *Error classificado.
func (c *WorkflowClient) TriggerCampaign(ctx context.Context, request *domain.WorkflowRequest) (*Response, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "workflow: failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "workflow: failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	logger := logrus.WithFields(logrus.Fields{
		"ad_id":         request.AdID,
		"ad_account_id": request.AdAccountID,
	})

	logger.Debugf("workflow: request payload\n%s", utils.PrettyJson(payload))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		workflowErr := classifyTransportError(err)
		c.record(string(workflowErr.Kind), start)
		logger.WithError(err).WithField("kind", workflowErr.Kind).Error("workflow: webhook call failed")
		return nil, workflowErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(string(KindUnreachable), start)
		return nil, &Error{Kind: KindUnreachable, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "failed to read response")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		workflowErr := newStatusError(resp.StatusCode, truncate(body, maxErrorBodySize))
		c.record(string(workflowErr.Kind), start)
		logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"kind":        workflowErr.Kind,
		}).Warn("workflow: webhook rejected the request")
		return nil, workflowErr
	}

	c.record("success", start)
	logger.WithField("status_code", resp.StatusCode).Info("workflow: campaign request accepted")

	return &Response{
		StatusCode: resp.StatusCode,
		Data:       decodeBody(body),
	}, nil
}

func (c *WorkflowClient) record(outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordWorkflowCall(outcome, time.Since(start).Seconds())
}

// decodeBody devolve o JSON decodificado ou o texto puro quando o corpo não é JSON
func decodeBody(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}
	return data
}

func truncate(body []byte, size int) string {
	if len(body) > size {
		return string(body[:size])
	}
	return string(body)
}
