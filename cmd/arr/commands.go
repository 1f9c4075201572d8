package arr

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	setCmd = &cobra.Command{
		Use:   "set [index] [value]",
		Short: "Sets the value at an index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			value, err := parseValue(args[1])
			if err != nil {
				return err
			}
			if err := rpcStore.SetOne(index, value); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "set successfully")
			return nil
		},
	}
	setAllCmd = &cobra.Command{
		Use:   "set-all [value]",
		Short: "Sets the value of every index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			if err := rpcStore.SetAll(value); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "set-all successfully")
			return nil
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [index]",
		Short: "Reads the value at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			value, err := rpcStore.Get(index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "A[%d] = %d\n", index, value)
			return nil
		},
	}
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Prints engine, length and metadata of the array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := rpcStore.GetInfo()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
)

// parseIndex parses an array index, range checks are done by the server
func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "index must be a number")
	}
	return index, nil
}

// parseValue parses a byte value (0-255)
func parseValue(s string) (byte, error) {
	value, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Wrapf(err, "value must be a number between 0 and 255")
	}
	return byte(value), nil
}
