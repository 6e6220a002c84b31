// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDCtxKey(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "user-1"),
			wantID: "user-1",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
		},
		{
			name: "empty string",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, ""),
		},
		{
			name: "plain string key does not collide",
			ctx:  context.WithValue(context.Background(), "userID", "user-1"), //nolint:staticcheck
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
