// Package morph implements grayscale morphology with rectangular
// structuring elements. Dilation and erosion decompose into two 1-D
// sliding-window passes (rows, then columns) running the O(n)
// monotonic-deque algorithm, so the cost is independent of the kernel
// size.
package morph
