package schemabridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jrazmi/pollschema/bridge/scaffolding/errs"
	"github.com/jrazmi/pollschema/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/pollschema/bridge/scaffolding/metrics"
	"github.com/jrazmi/pollschema/core/schemas"
	"github.com/jrazmi/pollschema/infrastructure/web"
	"github.com/jrazmi/pollschema/sdk/logger"
	"github.com/jrazmi/pollschema/sdk/validation"
)

type bridge struct {
	log      *logger.Logger
	registry *schemas.Registry
}

func newBridge(log *logger.Logger, registry *schemas.Registry) *bridge {
	if registry == nil {
		registry = schemas.Default()
	}
	return &bridge{
		log:      log,
		registry: registry,
	}
}

func (b *bridge) httpHealth(ctx context.Context, r *http.Request) web.Encoder {
	return fopbridge.NewCodeResponse("ok", fmt.Sprintf("%d models registered", len(b.registry.Models())))
}

func (b *bridge) httpListModels(ctx context.Context, r *http.Request) web.Encoder {
	models := b.registry.Models()
	out := make([]ModelSummary, len(models))
	for i, m := range models {
		out[i] = toSummary(m)
	}
	return fopbridge.NewRecordsResponse(out)
}

func (b *bridge) httpGetModel(ctx context.Context, r *http.Request) web.Encoder {
	m, err := b.registry.Model(web.Param(r, "model"))
	if err != nil {
		return errs.New(errs.NotFound, err)
	}
	return fopbridge.NewRecordResponse(m.Describe())
}

func (b *bridge) httpValidate(ctx context.Context, r *http.Request) web.Encoder {
	m, err := b.registry.Model(web.Param(r, "model"))
	if err != nil {
		return errs.New(errs.NotFound, err)
	}

	shape, ok := schemas.ParseShape(web.Param(r, "shape"))
	if !ok {
		return errs.Newf(errs.NotFound, "%s: %s", web.Param(r, "shape"), schemas.ErrShapeNotFound)
	}

	data, err := web.Body(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.Newf(errs.BadRequest, "payload exceeds %d bytes", maxErr.Limit)
		}
		return errs.New(errs.BadRequest, err)
	}

	v, err := b.registry.Parse(m.Name, shape, data)
	if err != nil {
		if issues, ok := validation.AsIssues(err); ok {
			metrics.AddValidation(ctx, m.Name, string(shape), metrics.OutcomeInvalid)
			if b.log != nil {
				b.log.DebugContext(ctx, "payload rejected", "model", m.Name, "shape", shape, "paths", issues.Paths())
			}
			return errs.NewIssues(issues)
		}
		if errors.Is(err, schemas.ErrShapeNotFound) {
			return errs.New(errs.NotFound, err)
		}
		return errs.Newf(errs.Internal, "validate %s.%s: %s", m.Name, shape, err)
	}

	metrics.AddValidation(ctx, m.Name, string(shape), metrics.OutcomeValid)
	return fopbridge.NewRecordResponse(v)
}

// httpPreflight is only reached when no CORS middleware answered first.
func (b *bridge) httpPreflight(ctx context.Context, r *http.Request) web.Encoder {
	return nil
}
