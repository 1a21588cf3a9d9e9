package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const pythonExample = `class Calculator:
    def __init__(self):
        self.result = 0

    def add(self, a, b):
        return a + b

    def multiply(self, x, y):
        return x * y

    def calculate_expression(self, expression):
        numbers = [1, 2, 3, 4, 5]
        total = sum(numbers)
        return total

calc = Calculator()
result1 = calc.add(10, 20)
result2 = calc.multiply(5, 6)
result3 = calc.calculate_expression("1+2+3")
`

var createExamplesCmd = &cobra.Command{
	Use:   "create-examples",
	Short: "Write sample Python files into examples/",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "examples"
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		path := filepath.Join(dir, "example.py")
		if err := os.WriteFile(path, []byte(pythonExample), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("example file created: %s\n", path)
		fmt.Println("convert it with:")
		fmt.Printf("  pythva convert %s\n", path)
		fmt.Printf("  pythva convert %s -o %s\n", path, filepath.Join(dir, "example.java"))
		return nil
	},
}
