package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-lambda-go/events"

	"github.com/jacentio/arbor/record"
	"github.com/jacentio/arbor/store"
	"github.com/jacentio/arbor/validate"
)

// Create stores a new todo item with a time-ordered id. The item starts
// unchecked with equal creation and update timestamps.
func (h *Handler) Create(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	p, err := validate.DecodeTodoCreate(req.Body)
	if err != nil {
		h.logger.Error("validation failed", "op", "create", "error", err)
		return textResponse(400, "Couldn't create the todo item."), nil
	}

	todo := record.NewTodo(h.ids.NewTimeOrdered(), *p.Text, h.now())
	if err := h.store.Put(ctx, todo); err != nil {
		h.logger.Error("put failed", "op", "create", "id", todo.ID, "error", err)
		return textResponse(store.StatusOf(err, 500), "Couldn't create the todo item."), nil
	}

	return h.jsonResponse(200, todo), nil
}

// GetAll returns every record in the table as a JSON array. No
// filtering, no pagination.
func (h *Handler) GetAll(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	recs, err := h.store.ScanAll(ctx)
	if err != nil {
		h.logger.Error("scan failed", "op", "getAll", "error", err)
		return textResponse(store.StatusOf(err, 501), "Couldn't fetch the todo item."), nil
	}

	if recs == nil {
		recs = []record.Record{}
	}
	return h.jsonResponse(200, recs), nil
}

// Update sets text, checked and updatedAt on the record named by the
// path id and returns the post-update image.
func (h *Handler) Update(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	p, err := validate.DecodeTodoUpdate(req.Body)
	if err != nil {
		h.logger.Error("validation failed", "op", "update", "error", err)
		return textResponse(400, "Couldn't update the todo item."), nil
	}

	id := req.PathParameters["id"]
	if id == "" {
		return textResponse(400, "Couldn't update the todo item."), nil
	}

	rec, err := h.store.Update(ctx, id, store.TodoFields{Text: *p.Text, Checked: *p.Checked}, h.now())
	if err != nil {
		h.logger.Error("update failed", "op", "update", "id", id, "error", err)
		return textResponse(store.StatusOf(err, 501), "Couldn't update the todo item."), nil
	}

	return h.jsonResponse(200, rec), nil
}

// Delete removes the record named by the path id. Deleting an id that
// does not exist still succeeds with an empty-object body.
func (h *Handler) Delete(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	id := req.PathParameters["id"]
	if err := h.store.Delete(ctx, id); err != nil {
		h.logger.Error("delete failed", "op", "delete", "id", id, "error", err)
		return textResponse(store.StatusOf(err, 501), "Couldn't remove the todo item."), nil
	}

	return h.jsonResponse(200, struct{}{}), nil
}

// DeleteAll removes every record, issuing the per-record deletes
// concurrently and waiting for all of them before responding. Deletes
// are independent and not rolled back; the response aggregates the
// outcome instead of reflecting whichever delete finished last.
func (h *Handler) DeleteAll(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	recs, err := h.finder.FindAll(ctx)
	if err != nil {
		h.logger.Error("scan failed", "op", "deleteAll", "error", err)
		return textResponse(store.StatusOf(err, 501), "Couldn't remove the records."), nil
	}

	errs := make(chan error, len(recs))
	var wg sync.WaitGroup
	for _, rec := range recs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := h.store.Delete(ctx, id); err != nil {
				h.logger.Error("delete failed", "op", "deleteAll", "id", id, "error", err)
				errs <- err
			}
		}(rec.ID)
	}
	wg.Wait()
	close(errs)

	failed := 0
	status := 0
	for err := range errs {
		failed++
		if status == 0 {
			status = store.StatusOf(err, 501)
		}
	}

	if failed > 0 {
		msg := fmt.Sprintf("Couldn't remove %d of %d records.", failed, len(recs))
		return textResponse(status, msg), nil
	}

	return h.jsonResponse(200, fmt.Sprintf("%d records deleted", len(recs))), nil
}
