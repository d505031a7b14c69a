// Package interop bridges grid buffers and the wider Go imaging
// ecosystem: conversion to and from image.Image, loading the common
// raster formats (PNG, JPEG, GIF, BMP, TIFF), and scaled preview
// export. The netpbm formats have their own bit-exact codec in
// internal/netpbm; everything else goes through here.
package interop
