package qstate

// minCodeDimension is the smallest truncation the default number-code
// tables were derived for. The tables occupy fewer Fock levels than
// this, but the optimization that produced them assumed room above the
// populated indices.
const minCodeDimension = 32

// numberCodes holds the five built-in number-code families used by
// Number when no explicit amplitude table is supplied. Each family is
// a pair of amplitude tables, indexed by the logical selector mu.
// These are empirically derived constants, kept as literal data; they
// are never regenerated at runtime and never mutated.
var numberCodes = [5][2][minCodeDimension]float64{
	{
		{0.84807051, 0, 0, 0.52988339, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0.78077641, 0, 0, 0.62481053, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0.20914577, 0, 0, 0, 0.79232953, 0, 0, 0, 0.56792587, 0, 0, 0, 0.07702053, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0.50123353, 0, 0, 0, 0.82596452, 0, 0, 0, 0.25752046, 0, 0, 0, 0.01519117, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0.16596251, 0, 0, 0, 0, 0, 0.86416346, 0, 0, 0, 0, 0, 0.47426296, 0, 0, 0, 0, 0, 0.02743342, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0.50325647, 0, 0, 0, 0, 0, 0.85073436, 0, 0, 0, 0, 0, 0.15157794, 0, 0, 0, 0, 0, 0.00284653, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{
		{0.23591897, 0, 0, 0, 0, 0, 0, 0, 0.88519011, 0, 0, 0, 0, 0, 0, 0, 0.40037997, 0, 0, 0, 0, 0, 0, 0, 0.02183083, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0.60423484, 0, 0, 0, 0, 0, 0, 0, 0.78715544, 0, 0, 0, 0, 0, 0, 0, 0.12361675, 0, 0, 0, 0, 0, 0, 0, 0.00234022, 0, 0, 0},
	},
	{
		{0.82565089, 0, 0.31262509, 0, 0.40280541, 0, 0.24148284, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0.77761126, 0, 0.43222808, 0, 0.35636357, 0, 0.28549014, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}
