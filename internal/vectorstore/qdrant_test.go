package vectorstore

import "testing"

func TestGrpcHostPort(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{
			name:     "standard local url",
			url:      "http://localhost:6333",
			wantHost: "localhost",
			wantPort: 6334,
		},
		{
			name:     "remote host",
			url:      "http://qdrant.internal:7000",
			wantHost: "qdrant.internal",
			wantPort: 7001,
		},
		{
			name:     "no port defaults to grpc default",
			url:      "http://qdrant.internal",
			wantHost: "qdrant.internal",
			wantPort: 6334,
		},
		{
			name:     "empty url falls back to localhost",
			url:      "",
			wantHost: "localhost",
			wantPort: 6334,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, err := grpcHostPort(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Error("grpcHostPort() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("grpcHostPort() error = %v", err)
			}
			if host != tt.wantHost || port != tt.wantPort {
				t.Errorf("grpcHostPort() = (%q, %d), want (%q, %d)", host, port, tt.wantHost, tt.wantPort)
			}
		})
	}
}
