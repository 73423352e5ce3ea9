package terminal

// Output interface is to handle the printing operations of the tool for different output points
type Output interface {
	Println(input string)
	Printf(format string, args ...interface{})
	Print(input string)
	Remove(size int)

	Confirm(question string) bool
}
