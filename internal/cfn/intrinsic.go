package cfn

// Intrinsic is a CloudFormation intrinsic function call such as
// {"Ref": "VpcId"}.
type Intrinsic map[string]any

const (
	NoValue   = "AWS::NoValue"
	StackName = "AWS::StackName"
	StackID   = "AWS::StackId"
	Region    = "AWS::Region"
)

func Ref(name string) Intrinsic {
	return Intrinsic{"Ref": name}
}

func GetAtt(resource, attribute string) Intrinsic {
	return Intrinsic{"Fn::GetAtt": []any{resource, attribute}}
}

func If(condition string, whenTrue, whenFalse any) Intrinsic {
	return Intrinsic{"Fn::If": []any{condition, whenTrue, whenFalse}}
}

func Join(delimiter string, values any) Intrinsic {
	return Intrinsic{"Fn::Join": []any{delimiter, values}}
}

func Sub(format string) Intrinsic {
	return Intrinsic{"Fn::Sub": format}
}

func Base64(value any) Intrinsic {
	return Intrinsic{"Fn::Base64": value}
}

func Equals(left, right any) Intrinsic {
	return Intrinsic{"Fn::Equals": []any{left, right}}
}

func Not(condition any) Intrinsic {
	return Intrinsic{"Fn::Not": []any{condition}}
}

// IfSet resolves to the parameter when the condition holds and drops the
// property otherwise.
func IfSet(condition, parameter string) Intrinsic {
	return If(condition, Ref(parameter), Ref(NoValue))
}
