// Command marquee-demo opens a window with a scrollable list (or an endless
// canvas) and lets you box-select its items with the mouse.
package main

func main() {
	Execute()
}
