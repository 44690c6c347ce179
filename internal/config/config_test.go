package config

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_TrustedProxyPrefixes(t *testing.T) {
	tests := []struct {
		name    string
		proxies []string
		want    []netip.Prefix
		wantErr bool
	}{
		{
			name: "none",
			want: []netip.Prefix{},
		},
		{
			name:    "bare addresses become single-host prefixes",
			proxies: []string{"10.0.0.1", "::1"},
			want: []netip.Prefix{
				netip.MustParsePrefix("10.0.0.1/32"),
				netip.MustParsePrefix("::1/128"),
			},
		},
		{
			name:    "ranges are masked",
			proxies: []string{" 172.16.3.4/12 "},
			want:    []netip.Prefix{netip.MustParsePrefix("172.16.0.0/12")},
		},
		{
			name:    "mapped v4 is unmapped",
			proxies: []string{"::ffff:192.0.2.1"},
			want:    []netip.Prefix{netip.MustParsePrefix("192.0.2.1/32")},
		},
		{
			name:    "blank items are skipped",
			proxies: []string{"", "  "},
			want:    []netip.Prefix{},
		},
		{
			name:    "hostname",
			proxies: []string{"proxy.local"},
			wantErr: true,
		},
		{
			name:    "bad range",
			proxies: []string{"10.0.0.0/40"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Server{TrustedProxies: tt.proxies}.TrustedProxyPrefixes()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
