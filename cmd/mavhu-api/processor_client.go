// file: processor_client.go
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// postProcessorReports calls POST {ProcessorURI}/reports to ask the
// analytics processor to (re)compute a company's ESG reports. The
// processor answers with an operation id and pushes the finished document
// back through the ingest endpoint.
func (a *App) postProcessorReports(ctx context.Context, in processorReportReq) (*processorReportResp, error) {
	if in.CompanyID == "" {
		return nil, fmt.Errorf("empty company id")
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal processor req: %w", err)
	}

	client := &http.Client{
		Timeout: 25 * time.Second,
	}

	url := a.cfg.ProcessorURI
	if url == "" || url == "local" {
		url = "http://127.0.0.1:8000"
	}
	url = url + "/reports"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Processor-Token", a.cfg.ProcessorToken)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("processor call failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("processor non-2xx: %s, body: %s", resp.Status, string(data))
	}

	var out processorReportResp
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode processor resp: %w", err)
	}
	return &out, nil
}

// notifyProcessor is the fire-and-forget wrapper handlers use; failures
// are logged, not surfaced to the caller.
func (a *App) notifyProcessor(ctx context.Context, in processorReportReq) {
	if _, err := a.postProcessorReports(ctx, in); err != nil {
		a.log.Warn("processor notify failed", zap.String("companyId", in.CompanyID), zap.Error(err))
	}
}
