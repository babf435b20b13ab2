// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import "fmt"

// Vector3 is a world-space position.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Quaternion is a rotation. The zero value is NOT the identity, use IdentityRotation.
type Quaternion struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// IdentityRotation returns the rotation that leaves orientation unchanged.
func IdentityRotation() Quaternion {
	return Quaternion{W: 1}
}

// IsIdentity reports whether q equals the identity rotation.
func (q Quaternion) IsIdentity() bool {
	return q == IdentityRotation()
}
