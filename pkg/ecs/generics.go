package ecs

import "reflect"

// typeOf 返回类型参数对应的 reflect.Type
// 组件统一以指针形式存储，T 通常为 *SomeComponent
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 泛型版本的组件获取，免去调用方的类型断言
//
// 示例:
//
//	pos, ok := ecs.GetComponent[*components.TransformComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 泛型版本的组件存在性检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 泛型版本的组件移除
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

// GetAliveEntitiesWith1 查询拥有组件 T1 且仍存活（未被标记删除）的实体
func GetAliveEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return filterAlive(em, GetEntitiesWith1[T1](em))
}

// GetAliveEntitiesWith2 查询同时拥有组件 T1、T2 且仍存活的实体
func GetAliveEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return filterAlive(em, GetEntitiesWith2[T1, T2](em))
}

// CountAlive 统计拥有组件 T 且仍存活的实体数量
func CountAlive[T any](em *EntityManager) int {
	return len(GetAliveEntitiesWith1[T](em))
}

func filterAlive(em *EntityManager, ids []EntityID) []EntityID {
	alive := ids[:0]
	for _, id := range ids {
		if em.IsAlive(id) {
			alive = append(alive, id)
		}
	}
	return alive
}
