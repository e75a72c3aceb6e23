// Copyright 2017 The Gomass Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package la3 implements basic operations with 3-component vectors
package la3

import "math"

// Dot returns the dot product u・v
func Dot(u, v []float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Cross returns the cross product u × v
func Cross(u, v []float64) []float64 {
	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// Norm returns the Euclidean norm of u
func Norm(u []float64) float64 {
	return math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
}

// Sub returns u - v
func Sub(u, v []float64) []float64 {
	return []float64{u[0] - v[0], u[1] - v[1], u[2] - v[2]}
}

// Add returns u + v
func Add(u, v []float64) []float64 {
	return []float64{u[0] + v[0], u[1] + v[1], u[2] + v[2]}
}

// Scale returns α・u
func Scale(α float64, u []float64) []float64 {
	return []float64{α * u[0], α * u[1], α * u[2]}
}

// Mean returns the average of a set of points; i.e. the centroid of vertices
func Mean(points ...[]float64) []float64 {
	c := make([]float64, 3)
	for _, p := range points {
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
	}
	n := float64(len(points))
	c[0] /= n
	c[1] /= n
	c[2] /= n
	return c
}

// Dist returns the distance between points a and b
func Dist(a, b []float64) float64 {
	return Norm(Sub(b, a))
}
