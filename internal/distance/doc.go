// Package distance computes distance transforms of integer images.
//
// Every pixel equal to the foreground value receives the distance to the
// nearest pixel with any other value; all other pixels receive zero.
// Four metrics are supported: Manhattan and Chessboard through the
// two-pass Rosenfeld-Pfaltz chamfer sweep, and Euclid and SquaredEuclid
// through the linear-time Meijster-Roerdink-Hesselink algorithm.
package distance
