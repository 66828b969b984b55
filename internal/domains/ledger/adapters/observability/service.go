package observability

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/ledger/ports"
)

const tracerName = "github.com/autobatya/workshop-api/internal/domains/ledger/adapters/observability/service"

// Service decorates the ledger application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateOrder")
	defer span.End()

	s.logInfo(ctx, "creating order")
	result, err := s.inner.CreateOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order")
	}
	if result != nil {
		s.metrics.recordOrderCreated(ctx, result.Status)
		s.logInfo(ctx, "order created", slog.Int64("order.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.GetOrder", attribute.Int64("order.id", id))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "Service.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx, filter)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.result.count", len(result)))
	return result, nil
}

func (s *Service) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var id int64
	if order != nil {
		id = order.ID
	}
	ctx, span := s.startSpan(ctx, "Service.UpdateOrder", attribute.Int64("order.id", id))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.Int64("order.id", id))
	result, err := s.inner.UpdateOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.Int64("order.id", id))
	}
	if result != nil {
		s.logInfo(ctx, "order updated", slog.Int64("order.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "Service.DeleteOrder", attribute.Int64("order.id", id))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int64("order.id", id))
	if err := s.inner.DeleteOrder(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", id))
	}
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", id))
	return nil
}

func (s *Service) RecalculateTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	ctx, span := s.startSpan(ctx, "Service.RecalculateTotal", attribute.Int64("order.id", orderID))
	defer span.End()

	total, err := s.inner.RecalculateTotal(ctx, orderID)
	if err != nil {
		return decimal.Zero, s.handleError(ctx, span, err, "failed to recalculate order total", slog.Int64("order.id", orderID))
	}
	s.metrics.recordTotalRecalculated(ctx)
	span.SetAttributes(attribute.String("order.total", total.String()))
	s.logInfo(ctx, "order total recalculated", slog.Int64("order.id", orderID), slog.String("total", total.String()))
	return total, nil
}

func (s *Service) CreateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	var orderID int64
	if item != nil {
		orderID = item.OrderID
	}
	ctx, span := s.startSpan(ctx, "Service.CreateLineItem", attribute.Int64("order.id", orderID))
	defer span.End()

	s.logInfo(ctx, "adding line item", slog.Int64("order.id", orderID))
	result, err := s.inner.CreateLineItem(ctx, item)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add line item", slog.Int64("order.id", orderID))
	}
	if result != nil {
		s.metrics.recordLineItemWritten(ctx, "create")
		s.logInfo(ctx, "line item added", slog.Int64("item.id", result.ID), slog.Int64("order.id", result.OrderID))
	}
	return result, nil
}

func (s *Service) GetLineItem(ctx context.Context, id int64) (*domain.LineItem, error) {
	ctx, span := s.startSpan(ctx, "Service.GetLineItem", attribute.Int64("item.id", id))
	defer span.End()

	result, err := s.inner.GetLineItem(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load line item", slog.Int64("item.id", id))
	}
	return result, nil
}

func (s *Service) ListLineItems(ctx context.Context, orderID int64) ([]*domain.LineItem, error) {
	ctx, span := s.startSpan(ctx, "Service.ListLineItems", attribute.Int64("order.id", orderID))
	defer span.End()

	result, err := s.inner.ListLineItems(ctx, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list line items", slog.Int64("order.id", orderID))
	}
	span.SetAttributes(attribute.Int("item.result.count", len(result)))
	return result, nil
}

func (s *Service) UpdateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	var id int64
	if item != nil {
		id = item.ID
	}
	ctx, span := s.startSpan(ctx, "Service.UpdateLineItem", attribute.Int64("item.id", id))
	defer span.End()

	s.logInfo(ctx, "updating line item", slog.Int64("item.id", id))
	result, err := s.inner.UpdateLineItem(ctx, item)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update line item", slog.Int64("item.id", id))
	}
	if result != nil {
		s.metrics.recordLineItemWritten(ctx, "update")
		s.logInfo(ctx, "line item updated", slog.Int64("item.id", result.ID), slog.Int64("order.id", result.OrderID))
	}
	return result, nil
}

func (s *Service) DeleteLineItem(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "Service.DeleteLineItem", attribute.Int64("item.id", id))
	defer span.End()

	s.logInfo(ctx, "deleting line item", slog.Int64("item.id", id))
	if err := s.inner.DeleteLineItem(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete line item", slog.Int64("item.id", id))
	}
	s.metrics.recordLineItemWritten(ctx, "delete")
	s.logInfo(ctx, "line item deleted", slog.Int64("item.id", id))
	return nil
}

func (s *Service) CheckAvailability(ctx context.Context, partID int64, quantity int) (bool, error) {
	ctx, span := s.startSpan(ctx, "Service.CheckAvailability",
		attribute.Int64("part.id", partID),
		attribute.Int("part.quantity.requested", quantity),
	)
	defer span.End()

	available, err := s.inner.CheckAvailability(ctx, partID, quantity)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to check part availability", slog.Int64("part.id", partID))
	}
	span.SetAttributes(attribute.Bool("part.available", available))
	return available, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	ordersCreated      metric.Int64Counter
	lineItemsWritten   metric.Int64Counter
	totalsRecalculated metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("ledger.service.orders.created", metric.WithDescription("Number of orders created"))
	lineItemsWritten, _ := m.Int64Counter("ledger.service.line_items.written", metric.WithDescription("Number of line item mutations"))
	totalsRecalculated, _ := m.Int64Counter("ledger.service.totals.recalculated", metric.WithDescription("Number of explicit order total recalculations"))
	return serviceMetrics{
		ordersCreated:      ordersCreated,
		lineItemsWritten:   lineItemsWritten,
		totalsRecalculated: totalsRecalculated,
	}
}

func (m serviceMetrics) recordOrderCreated(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.ordersCreated, 1, attribute.String("order.status", string(status)))
}

func (m serviceMetrics) recordLineItemWritten(ctx context.Context, op string) {
	addCounter(ctx, m.lineItemsWritten, 1, attribute.String("operation", op))
}

func (m serviceMetrics) recordTotalRecalculated(ctx context.Context) {
	addCounter(ctx, m.totalsRecalculated, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
