package roles

import (
	"testing"
	"time"
)

func TestRegionMoverArgs(t *testing.T) {
	tests := []struct {
		name     string
		graceful time.Duration
		mover    RegionMover
		want     string
	}{
		{
			name:     "disabled",
			graceful: time.Hour,
			mover:    RegionMover{MaxThreads: 1, Ack: true},
			want:     "",
		},
		{
			name:     "defaults",
			graceful: time.Hour,
			mover:    RegionMover{RunBeforeShutdown: true, MaxThreads: 1, Ack: true},
			want:     "--maxthreads 1 --timeout 3540",
		},
		{
			name:     "no ack",
			graceful: 10 * time.Minute,
			mover:    RegionMover{RunBeforeShutdown: true, MaxThreads: 5, Ack: false},
			want:     "--maxthreads 5 --timeout 540 --noack",
		},
		{
			name:     "short shutdown",
			graceful: 30 * time.Second,
			mover:    RegionMover{RunBeforeShutdown: true, MaxThreads: 1, Ack: true},
			want:     "--maxthreads 1 --timeout 30",
		},
		{
			name:     "additional options",
			graceful: time.Hour,
			mover: RegionMover{
				RunBeforeShutdown:      true,
				MaxThreads:             1,
				Ack:                    true,
				AdditionalMoverOptions: []string{"--designatedFile", "list of hosts"},
			},
			want: "--maxthreads 1 --timeout 3540 --designatedFile 'list of hosts'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &RegionServerConfig{
				HbaseConfig: HbaseConfig{gracefulShutdownTimeout: tt.graceful},
				regionMover: tt.mover,
			}
			if got := c.RegionMoverArgs(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if c.RunRegionMover() != tt.mover.RunBeforeShutdown {
				t.Errorf("RunRegionMover does not follow runBeforeShutdown")
			}
		})
	}

	var m MergedConfig = &MasterConfig{}
	if m.RegionMoverArgs() != "" || m.RunRegionMover() {
		t.Error("masters never run the region mover")
	}
}

func TestPorts(t *testing.T) {
	ports := Ports(Master, "2.4.17", false)
	if len(ports) != 3 || ports[2].Name != "metrics" {
		t.Errorf("2.4 masters should expose a metrics port: %+v", ports)
	}
	ports = Ports(RegionServer, "2.6.0", true)
	if len(ports) != 2 {
		t.Fatalf("expected two ports, got %+v", ports)
	}
	if ports[0].Port != 16020 || ports[1].Name != "ui-https" || ports[1].Port != 16030 {
		t.Errorf("unexpected region server ports %+v", ports)
	}
	ports = Ports(RestServer, "2.6.0", false)
	if ports[0].Name != "rest-http" || ports[0].Port != 8080 {
		t.Errorf("unexpected rest ports %+v", ports)
	}
}
