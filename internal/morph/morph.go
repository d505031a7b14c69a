package morph

import (
	"fmt"

	"github.com/rvanwijk/gridimg/internal/grid"
)

// slidingWindow computes the trailing-window extremum over n elements:
// out[i] covers src positions [i-w+1 .. i]. Element i lives at
// i*stride+start in both slices. The deque holds candidate indices in
// decreasing order of significance; its front is always the window
// extremum. dilate selects a max-window, otherwise a min-window.
func slidingWindow(src, out []int, n, w int, dilate bool, stride, start int, q *deque) {
	q.reset()
	for i := 0; i < n; i++ {
		for !q.empty() && q.front() <= i-w {
			q.popFront()
		}
		cur := src[i*stride+start]
		for !q.empty() && (src[q.back()*stride+start] <= cur) == dilate {
			q.popBack()
		}
		q.pushBack(i)
		out[i*stride+start] = src[q.front()*stride+start]
	}
}

// dilateErode runs the separable two-pass sweep. The row pass writes
// into the result; the column pass reads from an independent copy
// because the window reaches positions the pass itself overwrites.
func dilateErode(im *grid.IntImage, kw, kh int, dilate bool) *grid.IntImage {
	if kw < 1 || kh < 1 {
		panic(fmt.Sprintf("morph: kernel %dx%d must be at least 1x1", kw, kh))
	}
	d := im.Domain()
	width, height := d.Size()
	minR, maxR := im.DynamicRange()
	result := grid.NewIntImageDomain(d, minR, maxR)

	largest := kw
	if kh > largest {
		largest = kh
	}
	q := newDeque(largest)

	src := im.Pix()
	dst := result.Pix()
	for row := 0; row < height; row++ {
		slidingWindow(src, dst, width, kw, dilate, 1, row*width, q)
	}

	rowPass := result.Copy()
	src = rowPass.Pix()
	for col := 0; col < width; col++ {
		slidingWindow(src, dst, height, kh, dilate, width, col, q)
	}
	return result
}

// Dilate returns the grayscale dilation of im with a kw x kh
// rectangular structuring element.
func Dilate(im *grid.IntImage, kw, kh int) *grid.IntImage {
	return dilateErode(im, kw, kh, true)
}

// Erode returns the grayscale erosion of im with a kw x kh rectangular
// structuring element.
func Erode(im *grid.IntImage, kw, kh int) *grid.IntImage {
	return dilateErode(im, kw, kh, false)
}
