package service

import "Pulse/types"

// CountStrategy 计数策略
type CountStrategy uint8

const (
	// StrategyComputed 读取时实时聚合关系行，永远精确
	StrategyComputed CountStrategy = iota
	// StrategyRedundant 冗余计数字段，与关系行写入同一事务内增减，读取 O(1)
	StrategyRedundant
)

// StrategyFor 返回目标类型的计数策略
// 纯函数，无副作用；分支判断集中在这一处，不在各调用点散落 if
func StrategyFor(kind types.TargetKind) CountStrategy {
	if kind == types.TargetActivity {
		return StrategyRedundant
	}
	return StrategyComputed
}
