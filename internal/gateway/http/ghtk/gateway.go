package ghtk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shipping/internal/entities"
	"shipping/internal/service/carrier"
	retrierconfig "shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

const (
	carrierName = "ghtk"

	registerPath = "/services/shipment/order/?ver=1.5"
	statusPath   = "/services/shipment/v2/"

	// GHTK требует hamlet, если в адресе нет деревни.
	defaultHamlet = "Khác"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	BaseURL      string
	Token        string
	ClientSource string
}

type Gateway struct {
	client  httpClient
	retrier retrier
	config  Config
}

func New(client httpClient, config Config) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		config:  config,
	}
}

// Register создаёт заявку на забор. Не ретраится: повторный POST создал бы второй заказ у перевозчика.
func (g *Gateway) Register(ctx context.Context, req entities.CarrierPickupRequest) (*entities.CarrierRegistration, error) {
	body, err := json.Marshal(toRegisterRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gateway ghtk, marshal register request: %w", err)
	}

	var resp registerResponse
	err = g.executeWithMetrics(ctx, "Register", false, func(ctx context.Context) error {
		return g.do(ctx, http.MethodPost, registerPath, body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway ghtk, register %s: %w", req.PartnerID, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("gateway ghtk, register %s: %w: %s", req.PartnerID, carrier.ErrCarrierRejected, resp.Message)
	}

	return &entities.CarrierRegistration{
		TrackingCode:      resp.Order.Label,
		LabelCode:         resp.Order.TrackingID.String(),
		CarrierStatusCode: resp.Order.StatusID.String(),
	}, nil
}

// FetchStatus читает текущий код статуса по трек-номеру, временные ошибки ретраятся.
func (g *Gateway) FetchStatus(ctx context.Context, trackingCode string) (string, error) {
	var resp statusResponse
	err := g.executeWithMetrics(ctx, "FetchStatus", true, func(ctx context.Context) error {
		return g.do(ctx, http.MethodGet, statusPath+url.PathEscape(trackingCode), nil, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("gateway ghtk, fetch status %s: %w", trackingCode, err)
	}
	if !resp.Success {
		return "", fmt.Errorf("gateway ghtk, fetch status %s: %w: %s", trackingCode, carrier.ErrCarrierRejected, resp.Message)
	}
	return resp.Order.Status.String(), nil
}

func (g *Gateway) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Token", g.config.Token)
	req.Header.Set("X-Client-Source", g.config.ClientSource)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", carrier.ErrCarrierUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return &statusError{code: resp.StatusCode, cause: carrier.ErrCarrierUnreachable}
	case resp.StatusCode >= http.StatusBadRequest:
		return &statusError{code: resp.StatusCode, cause: carrier.ErrCarrierRejected}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type statusError struct {
	code  int
	cause error
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: http status %d", e.cause, e.code)
}

func (e *statusError) Unwrap() error {
	return e.cause
}

func isRetryable(err error) bool {
	return errors.Is(err, carrier.ErrCarrierUnreachable)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, retry bool, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	var err error
	if retry {
		err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
			attempt++
			return fn(ctx)
		})
	} else {
		attempt = 1
		err = fn(ctx)
	}

	outcome := outcomeOf(err)
	CarrierRequestDuration.WithLabelValues(carrierName, method, outcome).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		CarrierRetriesTotal.WithLabelValues(carrierName, method, outcome).Inc()
	}
	return err
}

func outcomeOf(err error) string {
	var se *statusError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &se):
		return fmt.Sprintf("http_%d", se.code)
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, carrier.ErrCarrierUnreachable):
		return "unreachable"
	default:
		return "error"
	}
}

func toRegisterRequest(req entities.CarrierPickupRequest) registerRequest {
	freeship := "0"
	if req.Freeship {
		freeship = "1"
	}

	order := orderPayload{
		ID:           req.PartnerID,
		PickName:     req.PickName,
		PickAddress:  req.PickAddress.Street,
		PickProvince: req.PickAddress.City,
		PickDistrict: req.PickAddress.District,
		PickWard:     req.PickAddress.Commune,
		PickTel:      req.PickPhone,
		Name:         req.ReceiverName,
		Tel:          req.ReceiverPhone,
		Address:      req.DeliveryAddress,
		Hamlet:       defaultHamlet,
		IsFreeship:   freeship,
		PickMoney:    req.CodAmount,
		Value:        req.Value,
		Transport:    "road",
		PickOption:   "cod",
		WeightOption: "kg",
		TotalWeight:  float64(req.WeightGrams) / 1000,
	}
	if addr := req.ReceiverAddress; addr != nil && !addr.IsEmpty() {
		order.Address = addr.Street
		order.Province = addr.City
		order.District = addr.District
		order.Ward = addr.Commune
	}

	products := make([]productPayload, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, productPayload{
			Name:        p.Name,
			Weight:      p.WeightKg,
			Quantity:    p.Quantity,
			ProductCode: p.ProductCode,
		})
	}

	return registerRequest{Order: order, Products: products}
}
