package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
	"github.com/jhoicas/retail-wizard/internal/domain"
	domassistant "github.com/jhoicas/retail-wizard/internal/domain/assistant"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

// Recorder registra métricas por interacción.
type Recorder interface {
	ObserveQuery(intent string)
	ObserveReply(intent, kind string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveQuery(string)         {}
func (nopRecorder) ObserveReply(string, string) {}

// AskInput entrada de una interacción.
type AskInput struct {
	Query     string
	CanWrite  bool
	RequestID string
}

// UseCase orquesta clasificador -> resolver -> dispatcher para una consulta.
// Cada llamada es independiente; no hay estado compartido entre consultas.
type UseCase struct {
	classifier *Classifier
	dispatcher *Dispatcher
	recorder   Recorder
	timeout    time.Duration
	log        *logger.Logger
}

// NewUseCase construye el caso de uso. recorder puede ser nil.
func NewUseCase(classifier *Classifier, dispatcher *Dispatcher, recorder Recorder, timeout time.Duration, log *logger.Logger) *UseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &UseCase{
		classifier: classifier,
		dispatcher: dispatcher,
		recorder:   recorder,
		timeout:    timeout,
		log:        log,
	}
}

// Ask resuelve una consulta. Solo devuelve error si la entrada es inválida;
// cualquier otro fallo llega como respuesta de tipo warning o error.
func (uc *UseCase) Ask(ctx context.Context, in AskInput) (*dto.AssistantReply, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: la consulta es obligatoria", domain.ErrInvalidInput)
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	result := uc.classifier.Classify(ctx, query)
	uc.recorder.ObserveQuery(string(result.Intent))

	outcome := uc.dispatcher.Dispatch(ctx, result.Intent, domassistant.Resolve(result), in.CanWrite)
	uc.recorder.ObserveReply(string(result.Intent), string(outcome.Kind))

	uc.log.Info().
		Str("request_id", in.RequestID).
		Str("intent", string(result.Intent)).
		Str("kind", string(outcome.Kind)).
		Dur("elapsed", time.Since(start)).
		Msg("consulta resuelta")

	return &dto.AssistantReply{
		Query:          query,
		Classification: result,
		Intent:         result.Intent,
		Reasoning:      result.Reasoning,
		Kind:           outcome.Kind,
		Title:          outcome.Title,
		Data:           outcome.Data,
		Summary:        outcome.Summary,
		Message:        outcome.Message,
	}, nil
}
