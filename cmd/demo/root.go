package demo

import (
	"fmt"
	"io"

	"github.com/ValentinKolb/oarr/cmd/util"
	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/array/engines"
	"github.com/spf13/cobra"
)

var (
	// DemoCmd runs the demonstration scenario against a local array
	DemoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run the overlay array demonstration on a local array",
		Long:  "Creates a local array of the selected engine and length, performs a fixed sequence of writes and prints every value including the first index past the end.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _ := cmd.Flags().GetString("engine")
			length, _ := cmd.Flags().GetInt("length")

			impl, err := engines.ParseImplementation(engine)
			if err != nil {
				return err
			}
			arr, err := engines.New(impl, length)
			if err != nil {
				return err
			}
			return Run(cmd.OutOrStdout(), arr)
		},
	}
)

func init() {
	DemoCmd.Flags().String("engine", string(array.ImplOverlay), util.WrapString("Engine of the array (stamp, overlay)"))
	DemoCmd.Flags().Int("length", 100, util.WrapString("Length of the array, the scenario needs at least 9 elements"))
}

// Run performs the demonstration scenario on arr and writes the results to w.
func Run(w io.Writer, arr array.OverlayArray) error {
	if arr.Len() < 9 {
		return fmt.Errorf("array length %d too small, at least 9 elements are required", arr.Len())
	}

	get := func(index int) string {
		value, err := arr.Get(index)
		if err != nil {
			return err.Error()
		}
		return fmt.Sprintf("%d", value)
	}

	info := arr.GetInfo()
	fmt.Fprintf(w, "Engine %s, length %d\n", info.Engine, info.Length)

	fmt.Fprintln(w, "1) Setting A[0] = 9 and A[2] = 10 via SetOne")
	if err := arr.SetOne(0, 9); err != nil {
		return err
	}
	if err := arr.SetOne(2, 10); err != nil {
		return err
	}

	fmt.Fprintln(w, "2) Reading A[0] and A[8]:")
	fmt.Fprintf(w, "   A[0] = %s  (explicitly set)\n", get(0))
	fmt.Fprintf(w, "   A[8] = %s  (never set, default 0)\n", get(8))

	fmt.Fprintln(w, "3) Calling SetAll(10) to override every position to 10")
	arr.SetAll(10)

	fmt.Fprintln(w, "4) After override, reading A[0] and A[2]:")
	fmt.Fprintf(w, "   A[0] = %s  (global override)\n", get(0))
	fmt.Fprintf(w, "   A[2] = %s  (global override)\n", get(2))

	fmt.Fprintln(w, "5) Now setting A[3] = 99 with SetOne after override")
	if err := arr.SetOne(3, 99); err != nil {
		return err
	}

	fmt.Fprintf(w, "6) Final values A[0] through A[%d]:\n", arr.Len())
	for i := 0; i <= arr.Len(); i++ {
		fmt.Fprintf(w, "   A[%2d] = %s\n", i, get(i))
	}

	return nil
}
