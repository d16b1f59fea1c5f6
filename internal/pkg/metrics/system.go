package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_bytes",
		Help: "Host memory in use, bytes",
	})

	ApplicationMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_memory_usage_bytes",
		Help: "Go heap allocation of the service, bytes",
	})
)

// StartSystemMetricsCollector раз в collectInterval снимает показатели
// хоста и процесса в прометеевские gauge'и.
func StartSystemMetricsCollector() {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collect()
		}
	}()
}

func collect() {
	if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
		SystemCPUUsage.Set(percents[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		SystemMemoryUsage.Set(float64(vm.Used))
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	ApplicationMemoryUsage.Set(float64(stats.Alloc))
}
