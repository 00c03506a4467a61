// Command cttkctl is a small driver around the cttk packages: it runs
// arithmetic from the command line and replays the library's own
// worked scenarios so a reader can see bigint and obuf behavior without
// writing a Go program first.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pornin/cttk/bigint"
	"github.com/pornin/cttk/ctbool"
	"github.com/pornin/cttk/cttkconf"
	"github.com/pornin/cttk/obuf"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cttkctl",
		Short: "Inspect the cttk constant-time bigint and obuf primitives",
	}

	var width int
	var nativeMul bool

	rootCmd.PersistentFlags().IntVar(&width, "width", 64, "BIGINT width in bits for the arithmetic commands")
	rootCmd.PersistentFlags().BoolVar(&nativeMul, "native-mul", false, "allow ctprim to use the hardware widening multiply")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cttkconf.Apply(cttkconf.Config{NativeMulAllowed: nativeMul})
	}

	rootCmd.AddCommand(
		newArithCmd(&width),
		newScenariosCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newArithCmd wires add/add-trunc/sub/mul/mul-trunc/divrem/mod/lsh/rsh/
// and/or/xor into a single arith subcommand that takes the op name as its
// first argument, sharing the --width flag and the a/b int64 operands.
func newArithCmd(width *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arith <op> <a> <b-or-count>",
		Short: "Evaluate one binary BIGINT operation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			a, err := parseInt64(args[1])
			if err != nil {
				return fmt.Errorf("operand a: %w", err)
			}
			b, err := parseInt64(args[2])
			if err != nil {
				return fmt.Errorf("operand b: %w", err)
			}
			return runArith(*width, op, a, b)
		},
	}
	return cmd
}

func parseInt64(s string) (int64, error) {
	var v int64
	_, err := fmt.Sscanf(s, "%d", &v)
	return v, err
}

func runArith(width int, op string, a, b int64) error {
	x := bigint.New(width)
	bigint.SetS64(x, a)
	y := bigint.New(width)
	bigint.SetS64(y, b)
	z := bigint.New(width)

	switch op {
	case "add":
		bigint.Add(z, x, y)
	case "add-trunc":
		bigint.AddTrunc(z, x, y)
	case "sub":
		bigint.Sub(z, x, y)
	case "mul":
		bigint.Mul(z, x, y)
	case "mul-trunc":
		bigint.MulTrunc(z, x, y)
	case "divrem":
		r := bigint.New(width)
		bigint.DivRem(z, r, x, y)
		fmt.Printf("q = %s\n", formatInt(z))
		fmt.Printf("r = %s\n", formatInt(r))
		return nil
	case "mod":
		bigint.Mod(z, x, y)
	case "lsh":
		bigint.Lsh(z, x, int(b))
	case "rsh":
		bigint.Rsh(z, x, int(b))
	case "and":
		bigint.And(z, x, y)
	case "or":
		bigint.Or(z, x, y)
	case "xor":
		bigint.Xor(z, x, y)
	default:
		return fmt.Errorf("unknown op %q (want add, add-trunc, sub, mul, mul-trunc, divrem, mod, lsh, rsh, and, or, xor)", op)
	}
	fmt.Println(formatInt(z))
	return nil
}

func formatInt(x *bigint.Int) string {
	if x.IsNaN().Reveal() {
		return "NaN"
	}
	if x.Width() <= 64 {
		return fmt.Sprintf("%d", bigint.ToS64Trunc(x))
	}
	return fmt.Sprintf("%d (low 64 bits; width %d)", bigint.ToS64Trunc(x), x.Width())
}

// newScenariosCmd replays the worked scenarios from the design
// documentation and reports whether each one still holds, the same role
// z80-optimizer's verify command plays for its own rule files.
func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "Replay the built-in S1-S6 worked scenarios and check the outputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			failures := 0
			for _, s := range scenarios {
				got, want := s.run()
				status := "ok"
				if got != want {
					status = "FAIL"
					failures++
				}
				fmt.Printf("[%s] %-40s got=%q want=%q\n", status, s.name, got, want)
			}
			if failures > 0 {
				return fmt.Errorf("%d scenario(s) failed", failures)
			}
			return nil
		},
	}
}

type scenario struct {
	name string
	run  func() (got, want string)
}

var scenarios = []scenario{
	{"S1 average of [1,2,3,4,5]", scenarioAverage},
	{"S2 signed add overflow width8", scenarioAddOverflow},
	{"S3 divrem edge width8", scenarioDivRemEdge},
	{"S4 mod sign width16", scenarioModSign},
	{"S5 byte codec signed BE width32", scenarioByteCodec},
	{"S6 cond_copy overlap", scenarioCondCopy},
}

func scenarioAverage() (string, string) {
	const width = 129
	values := []byte{}
	for _, v := range []uint64{1, 2, 3, 4, 5} {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * uint(i)))
		}
		values = append(values, buf[:]...)
	}

	sum := bigint.New(width)
	bigint.SetU64(sum, 0)
	elt := make([]byte, 8)
	for idx := uint32(0); idx < 5; idx++ {
		obuf.ArrayRead(elt, values, 8, 5, idx)
		v := uint64(0)
		for i, bb := range elt {
			v |= uint64(bb) << (8 * uint(i))
		}
		term := bigint.New(width)
		bigint.SetU64(term, v)
		bigint.AddTrunc(sum, sum, term)
	}

	num := bigint.New(width)
	bigint.SetU64(num, 5)
	q, r := bigint.New(width), bigint.New(width)
	bigint.DivRem(q, r, sum, num)

	got := fmt.Sprintf("q=%d r=%d", bigint.ToS64Trunc(q), bigint.ToS64Trunc(r))
	return got, "q=3 r=0"
}

func scenarioAddOverflow() (string, string) {
	a, b := bigint.New(8), bigint.New(8)
	bigint.SetS64(a, 100)
	bigint.SetS64(b, 100)
	z := bigint.New(8)
	bigint.Add(z, a, b)
	trunc := bigint.New(8)
	bigint.AddTrunc(trunc, a, b)
	got := fmt.Sprintf("add=%s add_trunc=%d", formatInt(z), bigint.ToS64Trunc(trunc))
	return got, "add=NaN add_trunc=-56"
}

func scenarioDivRemEdge() (string, string) {
	a := bigint.New(8)
	bigint.SetS64(a, -128)
	b1 := bigint.New(8)
	bigint.SetS64(b1, -1)
	q1, r1 := bigint.New(8), bigint.New(8)
	bigint.DivRem(q1, r1, a, b1)

	b2 := bigint.New(8)
	bigint.SetS64(b2, 2)
	q2, r2 := bigint.New(8), bigint.New(8)
	bigint.DivRem(q2, r2, a, b2)

	got := fmt.Sprintf("q1=%s r1=%s q2=%d r2=%d", formatInt(q1), formatInt(r1), bigint.ToS64Trunc(q2), bigint.ToS64Trunc(r2))
	return got, "q1=NaN r1=0 q2=-64 r2=0"
}

func scenarioModSign() (string, string) {
	a, b := bigint.New(16), bigint.New(16)
	bigint.SetS64(a, -7)
	bigint.SetS64(b, 3)
	q, r := bigint.New(16), bigint.New(16)
	bigint.DivRem(q, r, a, b)
	m := bigint.New(16)
	bigint.Mod(m, a, b)
	got := fmt.Sprintf("q=%d r=%d mod=%d", bigint.ToS64Trunc(q), bigint.ToS64Trunc(r), bigint.ToS64Trunc(m))
	return got, "q=-2 r=-1 mod=2"
}

func scenarioByteCodec() (string, string) {
	in := []byte{0xFF, 0xFF, 0xFF, 0xFE}
	signed := bigint.New(32)
	bigint.DecodeBESigned(signed, in)
	back := make([]byte, 4)
	bigint.EncodeBE(signed, back)

	unsigned := bigint.New(32)
	bigint.DecodeBEUnsigned(unsigned, in)

	wide := bigint.New(33)
	bigint.DecodeBEUnsigned(wide, in)

	got := fmt.Sprintf("signed=%d roundtrip=%x unsigned32=%s unsigned33=%d",
		bigint.ToS64Trunc(signed), back, formatInt(unsigned), bigint.ToS64Trunc(wide))
	return got, "signed=-2 roundtrip=fffffffe unsigned32=NaN unsigned33=4294967294"
}

func scenarioCondCopy() (string, string) {
	buf := []byte{1, 2, 3, 4, 5}
	obuf.CondCopy(ctbool.True, buf[1:5], buf[0:4])
	got := fmt.Sprintf("%v", buf)
	return got, "[1 1 2 3 4]"
}
