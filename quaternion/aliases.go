// SPDX-License-Identifier: MIT

package quaternion

type (
	QuaternionF = Quaternion[float32]
	QuaternionD = Quaternion[float64]
)
