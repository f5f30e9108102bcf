package pagination_test

import (
	"net/http/httptest"
	"testing"

	"news-aggregator/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name     string
		url      string
		wantPage int
		wantSize int
		wantErr  bool
	}{
		{
			name:     "defaults when absent",
			url:      "/api/news",
			wantPage: 0,
			wantSize: 10,
		},
		{
			name:     "explicit page and size",
			url:      "/api/news?page=2&size=25",
			wantPage: 2,
			wantSize: 25,
		},
		{
			name:     "page zero is valid",
			url:      "/api/news?page=0",
			wantPage: 0,
			wantSize: 10,
		},
		{
			name:    "negative page",
			url:     "/api/news?page=-1",
			wantErr: true,
		},
		{
			name:    "non-numeric page",
			url:     "/api/news?page=abc",
			wantErr: true,
		},
		{
			name:    "zero size",
			url:     "/api/news?size=0",
			wantErr: true,
		},
		{
			name:    "size over max",
			url:     "/api/news?size=101",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			params, err := pagination.ParseQueryParams(r, config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQueryParams err=%v", err)
			}
			if params.Page != tt.wantPage || params.Size != tt.wantSize {
				t.Errorf("params = %+v, want page=%d size=%d", params, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestParams_WithDefaults(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	got := pagination.Params{Page: -5, Size: 0}.WithDefaults(config)
	if got.Page != 0 || got.Size != 10 {
		t.Errorf("WithDefaults = %+v, want page=0 size=10", got)
	}

	got = pagination.Params{Page: 3, Size: 500}.WithDefaults(config)
	if got.Page != 3 || got.Size != 100 {
		t.Errorf("WithDefaults = %+v, want page=3 size=100", got)
	}
}
