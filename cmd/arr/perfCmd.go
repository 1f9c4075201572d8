package arr

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/oarr/cmd/util"
	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for oarr servers",
		Long:    "Runs set, set-all, get and mixed workloads in parallel against the selected shard and reports throughput and latency percentiles. The benchmark overwrites the contents of the shard.",
		RunE:    run,
		PreRunE: processPerfConfig,
	}
	perfNumThreads  = 10
	perfIndexSpread = 100
	perfSkip        = make([]string, 0)

	// latency percentiles reported per test
	perfPercentiles = []float64{0.5, 0.9, 0.99}
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. set,get)"))
	key = "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "indices"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different indices to use for the tests (capped at the array length)"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfIndexSpread = viper.GetInt("indices")
	perfNumThreads = viper.GetInt("threads")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	if perfIndexSpread < 1 {
		return fmt.Errorf("indices must be positive")
	}

	return nil
}

// perfResult holds the outcome of one benchmark
type perfResult struct {
	bench   testing.BenchmarkResult
	latency metrics.Timer
}

func run(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for oarr servers")

	// Limit the indices to the array length
	info, err := rpcStore.GetInfo()
	if err != nil {
		return err
	}
	if info.Length == 0 {
		return fmt.Errorf("shard %d has length 0, nothing to test", util.GetShardID())
	}
	if perfIndexSpread > info.Length {
		perfIndexSpread = info.Length
	}

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Engine: %s (length %d)\n", info.Engine, info.Length)
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Printf("Indices: %d\n", perfIndexSpread)
	fmt.Println()

	fmt.Println("starting tests...")

	// Latency timers, one per test
	registry := metrics.NewRegistry()
	results := make(map[string]perfResult)

	// operation is one request issued by a benchmark worker
	type operation func(counter int) error

	benchmark := func(test string, op operation) {
		timer := metrics.GetOrRegisterTimer(test, registry)

		result := testing.Benchmark(func(b *testing.B) {
			if shouldSkip(test) {
				return
			}

			b.SetParallelism(perfNumThreads)

			b.ResetTimer()

			b.RunParallel(func(pb *testing.PB) {
				counter := 0
				for pb.Next() {
					start := time.Now()
					if err := op(counter); err != nil {
						log.Printf("(%s) - error: %v\n", test, err)
					}
					timer.UpdateSince(start)
					counter++
				}
			})
		})

		results[test] = perfResult{bench: result, latency: timer}
		printResult(test, results[test])
	}

	benchmark("set", func(counter int) error {
		return rpcStore.SetOne(counter%perfIndexSpread, byte(counter))
	})

	benchmark("set-all", func(counter int) error {
		return rpcStore.SetAll(byte(counter))
	})

	benchmark("get", func(counter int) error {
		_, err := rpcStore.Get(counter % perfIndexSpread)
		return err
	})

	benchmark("mixed", func(counter int) error {
		index := counter % perfIndexSpread
		switch counter % 4 {
		case 0: // set
			return rpcStore.SetOne(index, byte(counter))
		case 1, 2: // get
			_, err := rpcStore.Get(index)
			return err
		default: // set-all
			return rpcStore.SetAll(byte(counter))
		}
	})

	// Write results to csv is specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results, util.GetClientConfig()); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == strings.TrimSpace(skip) {
			return true
		}
	}
	return false
}

// opsPerSec converts a benchmark result into throughput, zero for skipped tests
func opsPerSec(result testing.BenchmarkResult) (nsPerOp float64, ops float64) {
	if result.NsPerOp() == 0 {
		return 0, 0
	}
	nsPerOp = math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	return nsPerOp, 1.0 / (nsPerOp / 1e9)
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result perfResult) {
	if result.bench.NsPerOp() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	nsPerOp, ops := opsPerSec(result.bench)
	ps := result.latency.Percentiles(perfPercentiles)

	// Print the formatted result
	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\tp50=%s p90=%s p99=%s\n",
		test, nsPerOp, time.Duration(nsPerOp), ops,
		time.Duration(ps[0]), time.Duration(ps[1]), time.Duration(ps[2]))
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]perfResult, config *common.ClientConfig) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "Skipped",
		"P50", "P90", "P99", "Samples",
		"Endpoints", "TimeoutSec", "RetryCount", "ConnectionsPerEndpoint",
		"ShardID", "Serializer", "Transport",
		"Threads", "Indices",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Stable row order
	tests := make([]string, 0, len(results))
	for test := range results {
		tests = append(tests, test)
	}
	sort.Strings(tests)

	// Write test results
	for _, test := range tests {
		result := results[test]
		nsPerOp, ops := opsPerSec(result.bench)
		ps := result.latency.Percentiles(perfPercentiles)

		row := []string{
			test,
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", ops),
			strconv.FormatBool(result.bench.NsPerOp() == 0),
			time.Duration(ps[0]).String(),
			time.Duration(ps[1]).String(),
			time.Duration(ps[2]).String(),
			strconv.FormatInt(result.latency.Count(), 10),
			strings.Join(config.Transport.Endpoints, ";"),
			strconv.Itoa(config.TimeoutSecond),
			strconv.Itoa(config.Transport.RetryCount),
			strconv.Itoa(config.Transport.ConnectionsPerEndpoint),
			strconv.FormatUint(util.GetShardID(), 10),
			viper.GetString("serializer"),
			viper.GetString("transport"),
			strconv.Itoa(perfNumThreads),
			strconv.Itoa(perfIndexSpread),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", test, err)
		}
	}

	return nil
}
