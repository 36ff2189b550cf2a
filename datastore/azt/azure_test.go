/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	stderrors "errors"
	"net/http"
	"testing"

	serrors "github.com/suparena/tablestore/errors"
)

func TestClassify(t *testing.T) {
	t.Run("non service error becomes transport", func(t *testing.T) {
		err := classify("create table", "People", stderrors.New("dial tcp: connection refused"), "", "")
		if !serrors.IsTransportError(err) {
			t.Fatalf("expected TransportError, got %v", err)
		}
	})

	t.Run("404 with key becomes not found", func(t *testing.T) {
		err := classify("delete entity", "People", respError(http.StatusNotFound, "ResourceNotFound"), "entity", "p/r")
		if !serrors.IsNotFound(err) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		var nf *serrors.NotFoundError
		if stderrors.As(err, &nf) {
			if nf.Kind != "entity" || nf.Key != "p/r" {
				t.Errorf("unexpected fields: %+v", nf)
			}
		}
	})

	t.Run("404 without key stays service error", func(t *testing.T) {
		err := classify("list tables", "", respError(http.StatusNotFound, "ResourceNotFound"), "", "")
		if !serrors.IsServiceError(err) {
			t.Fatalf("expected ServiceError, got %v", err)
		}
	})

	t.Run("conflict with table exists code", func(t *testing.T) {
		err := classify("create table", "People", respError(http.StatusConflict, "TableAlreadyExists"), "", "")
		if !serrors.IsAlreadyExists(err) {
			t.Fatalf("expected AlreadyExistsError, got %v", err)
		}
	})

	t.Run("conflict with other code stays service error", func(t *testing.T) {
		err := classify("create table", "People", respError(http.StatusConflict, "TableBeingDeleted"), "", "")
		if !serrors.IsServiceError(err) {
			t.Fatalf("expected ServiceError, got %v", err)
		}
	})

	t.Run("service error carries fields", func(t *testing.T) {
		err := classify("create table", "People", respError(http.StatusForbidden, "AuthorizationFailure"), "", "")
		var svcErr *serrors.ServiceError
		if !stderrors.As(err, &svcErr) {
			t.Fatalf("expected ServiceError, got %v", err)
		}
		if svcErr.Op != "create table" || svcErr.Table != "People" {
			t.Errorf("unexpected op/table: %q %q", svcErr.Op, svcErr.Table)
		}
		if svcErr.StatusCode != http.StatusForbidden || svcErr.Code != "AuthorizationFailure" {
			t.Errorf("unexpected status/code: %d %q", svcErr.StatusCode, svcErr.Code)
		}
	})
}
