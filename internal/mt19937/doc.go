// Package mt19937 implements the 32-bit Mersenne Twister (Matsumoto and
// Nishimura, 1998) with reference init_genrand seeding.
//
// The stream matches any MT19937 seeded through init_genrand, including the
// legacy numpy RandomState seeded with a 32-bit integer.
package mt19937
