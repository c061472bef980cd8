/* Package main: gorpn, a reverse polish calculator that grew blocks

Programs are whitespace separated tokens, read left to right. Numbers are
pushed onto the operand stack, and names run operations against it:

	1 2 +          -- leaves 3
	7 2 /          -- leaves 3, division truncates toward zero
	1 2 <          -- leaves 1, comparisons give 1 or 0

Numbers are 32-bit signed integers written as an optional minus sign followed
by decimal digits; arithmetic wraps around on overflow.

Blocks

A "{" starts capturing tokens instead of running them, until its matching "}".
The captured tokens become a block value on the stack:

	1 2 + { 3 4 }  -- leaves 3 and a block of 3 and 4

Blocks nest; an inner block is captured as a single element of its outer
block. A block is data until something runs it.

Names

A token starting with "/" is a symbol; def binds a symbol to a value:

	/x 10 def
	/y 20 def
	x y *          -- leaves 200

Using a name bound to a block runs the block's elements in place, which is how
new operations are defined:

	/double { 2 * } def
	10 double      -- leaves 20

All names share one namespace, and definitions last for the rest of the
session; redefining a name replaces it, built-in operations included.

Conditionals

if takes a condition block, a then block, and an else block. The condition is
run, a number popped, and then one of the branches is run:

	/x 10 def /y 20 def
	{ x y < } { x } { y } if   -- leaves 10

Stack operations

	pop        discard the top value
	dup        copy the top value
	exch       swap the top two values
	n index    copy the value n places below the top, 0 being the top
	puts       print and discard the top value

Running

Given file arguments, each file is run to completion in its own session and
its stack printed after; the first error ends that file's run. Without file
arguments standard input is run line by line in one session, printing the
stack after every line; errors are reported and the next line is run as usual.
*/
package main
