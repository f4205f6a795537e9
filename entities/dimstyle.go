package entities

// DimOverride 可在标注或引线上单独覆盖的标注样式变量
type DimOverride int

const (
	DimPost DimOverride = iota
	DimAltPost
	DimScale
	DimArrowSize
	DimExtOffset
	DimLineIncrement
	DimExtExtend
	DimRound
	DimLineExtend
	DimTolPlus
	DimTolMinus
	DimFixedExtLength
	DimJogAngle
	DimTextFill
	DimTextFillColor
	DimTolerance
	DimLimits
	DimTextInsideHorizontal
	DimTextOutsideHorizontal
	DimSuppressExt1
	DimSuppressExt2
	DimTextVertical
	DimArcSymbol
	DimTextHeight
	DimCenter
	DimTickSize
	DimAltScale
	DimLinearScale
	DimTextVerticalPos
	DimTolScale
	DimGap
	DimAltRound
	DimAlt
	DimAltDecimals
	DimForceLine
	DimSeparateArrows
	DimForceTextInside
	DimSuppressOutside
	DimLineColor
	DimExtColor
	DimTextColor
	DimAngularDecimals
	DimDecimals
	DimTolDecimals
	DimAltUnits
	DimAltTolDecimals
	DimAngularUnits
	DimFraction
	DimLinearUnits
	DimDecimalSeparator
	DimTextMove
	DimTextJustify
	DimSuppressLine1
	DimSuppressLine2
	DimTolJustify
	DimFit
	DimFixedExtOn
	DimTextDirection
	DimTextStyle
	DimLeaderArrow
	DimArrow
	DimArrow1
	DimArrow2
	DimLineType
	DimExt1LineType
	DimExt2LineType
	DimLineWeight
	DimExtLineWeight

	// 以下为零抑制分量，写出时按单位族合并成一个整数
	DimLengthSuppressLeading
	DimLengthSuppressTrailing
	DimLengthSuppressFeet
	DimLengthSuppressInches
	DimAngularSuppressLeading
	DimAngularSuppressTrailing
	DimAltSuppressLeading
	DimAltSuppressTrailing
	DimAltSuppressFeet
	DimAltSuppressInches
	DimTolSuppressLeading
	DimTolSuppressTrailing
	DimTolSuppressFeet
	DimTolSuppressInches
	DimAltTolSuppressLeading
	DimAltTolSuppressTrailing
	DimAltTolSuppressFeet
	DimAltTolSuppressInches

	dimOverrideCount
)

// DimOverrideCount 覆盖项的个数，便于按固定顺序遍历
const DimOverrideCount = int(dimOverrideCount)

// DimStyleOverrides 样式覆盖。值的类型：float64、int16、bool、string
// （文字样式、箭头块、线型按名称引用）、core.Color、core.LineWeight
type DimStyleOverrides map[DimOverride]any

// Set 链式设置
func (o DimStyleOverrides) Set(k DimOverride, v any) DimStyleOverrides {
	o[k] = v
	return o
}
