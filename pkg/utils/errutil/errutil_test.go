package errutil_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/errutil"
)

func TestHandle(t *testing.T) {
	t.Run("nil error passes through", func(t *testing.T) {
		gt.NoError(t, errutil.Handle(context.Background(), nil, "noop"))
	})

	t.Run("error is returned unchanged", func(t *testing.T) {
		base := errors.New("boom")
		err := goerr.Wrap(base, "failed to score", goerr.V("records", 3))

		got := errutil.Handle(context.Background(), err, "scoring failed")
		gt.Error(t, got).Is(base)
	})
}

func TestHandleHTTP(t *testing.T) {
	w := httptest.NewRecorder()
	errutil.HandleHTTP(context.Background(), w, goerr.New("deadline not found"), http.StatusNotFound)

	gt.Value(t, w.Code).Equal(http.StatusNotFound)
	gt.String(t, w.Body.String()).Contains("deadline not found")
}
